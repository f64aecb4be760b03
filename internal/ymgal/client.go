// Package ymgal provides a client for the ymgal.games open catalog API.
package ymgal

import (
	"net/http"
	"strings"
	"time"

	"github.com/Hxfrzc/galinfo/internal/ratelimit"
)

const (
	defaultBaseURL       = "https://www.ymgal.games"
	defaultSimilarity    = 80
	defaultRatePerSecond = 5 // the open API has no published quota; stay polite

	apiVersion = "1"

	codeOK       = 0
	codeNotFound = 614
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a ymgal.games open API client. Archive requests require a token
// source; wire one with SetTokenSource before issuing them.
type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	similarity   int
	httpClient   HTTPDoer
	rateLimiter  *ratelimit.Limiter
	tokens       TokenSource
}

// NewClient creates a new ymgal API client.
func NewClient(clientID, clientSecret string, opts ...Option) *Client {
	client := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      defaultBaseURL,
		similarity:   defaultSimilarity,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		rateLimiter:  ratelimit.New("ymgal", defaultRatePerSecond),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// SetTokenSource wires the source of bearer tokens for archive requests.
// Must be called before SearchGame, ListSearch, OrgInfo or MergeOrg.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the ymgal API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithSimilarity sets the match threshold passed to accurate searches.
func WithSimilarity(similarity int) Option {
	return func(client *Client) {
		if similarity > 0 {
			client.similarity = similarity
		}
	}
}

// WithRateLimiter sets a custom rate limiter for the client.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		if limiter != nil {
			client.rateLimiter = limiter
		}
	}
}
