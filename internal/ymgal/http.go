package ymgal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/Hxfrzc/galinfo/internal/errors"
)

// getJSON issues an authorized GET against the catalog and decodes the JSON
// response into target. Transport failures and unexpected HTTP statuses are
// returned unmasked; catalog-level response codes are the caller's concern.
func (c *Client) getJSON(ctx context.Context, endpoint string, target any) error {
	if c.tokens == nil || c.tokens.Token() == "" {
		return apperrors.NewCredentialError(nil)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json;charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	req.Header.Set("version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("ymgal: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
