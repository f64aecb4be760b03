package ymgal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	apperrors "github.com/Hxfrzc/galinfo/internal/errors"
)

// TokenSource yields the current bearer token for archive requests.
// An empty string means no token has been issued yet.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource, mainly for tests.
type StaticToken string

// Token returns the fixed token.
func (t StaticToken) Token() string {
	return string(t)
}

// FetchToken requests a fresh client-credentials token from the catalog's
// OAuth endpoint. It needs no prior authorization.
func (c *Client) FetchToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("scope", "public")

	endpoint := c.baseURL + "/oauth/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewCredentialError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperrors.NewCredentialError(fmt.Errorf("token endpoint returned status %d", resp.StatusCode))
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", apperrors.NewCredentialError(err)
	}
	if result.AccessToken == "" {
		return "", apperrors.NewCredentialError(fmt.Errorf("token endpoint returned no access_token"))
	}

	return result.AccessToken, nil
}

// Refresher keeps a bearer token continuously valid on a fixed schedule.
// Exactly one goroutine replaces the stored token; any number of concurrent
// readers load it through an atomic pointer.
type Refresher struct {
	fetch    func(context.Context) (string, error)
	interval time.Duration
	token    atomic.Pointer[string]
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewRefresher creates a Refresher that calls fetch every interval.
func NewRefresher(fetch func(context.Context) (string, error), interval time.Duration) *Refresher {
	return &Refresher{fetch: fetch, interval: interval}
}

// Token returns the most recently issued token, or "" before the first
// successful fetch.
func (r *Refresher) Token() string {
	p := r.token.Load()
	if p == nil {
		return ""
	}
	return *p
}

// Start performs a blocking initial fetch and launches the refresh loop.
// An initial fetch failure is returned so the caller can decide whether to
// proceed degraded; the loop runs either way and will retry on schedule.
func (r *Refresher) Start(ctx context.Context) error {
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	token, err := r.fetch(ctx)
	if err == nil {
		r.token.Store(&token)
	} else {
		slog.Error("Initial token fetch failed", "error", err)
	}

	go r.loop(ctx)
	return err
}

func (r *Refresher) loop(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			token, err := r.fetch(ctx)
			if err != nil {
				// Keep serving the previous token until the next tick.
				slog.Error("Token refresh failed", "error", err)
				continue
			}
			r.token.Store(&token)
			slog.Info("Token refreshed", "interval", r.interval)
		}
	}
}

// Stop cancels the refresh loop and waits for it to exit. Safe to call only
// after Start.
func (r *Refresher) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
}
