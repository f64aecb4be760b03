package ymgal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Hxfrzc/galinfo/internal/errors"
)

func TestFetchToken_PostsClientCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/oauth/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "test-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "test-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "public", r.PostForm.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"access_token": "fresh-token"}))
	}))
	defer server.Close()

	client := NewClient("test-id", "test-secret", WithBaseURL(server.URL))

	token, err := client.FetchToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
}

func TestFetchToken_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("test-id", "bad-secret", WithBaseURL(server.URL))

	_, err := client.FetchToken(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCredentialError(err))
}

func TestFetchToken_EmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{}))
	}))
	defer server.Close()

	client := NewClient("test-id", "test-secret", WithBaseURL(server.URL))

	_, err := client.FetchToken(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCredentialError(err))
}

func TestRefresher_ReplacesTokenOnSchedule(t *testing.T) {
	var calls atomic.Int64
	fetch := func(ctx context.Context) (string, error) {
		return fmt.Sprintf("token-%d", calls.Add(1)), nil
	}

	refresher := NewRefresher(fetch, 10*time.Millisecond)
	require.NoError(t, refresher.Start(context.Background()))
	defer refresher.Stop()

	assert.Equal(t, "token-1", refresher.Token())

	// After at least two intervals the stored token has been replaced, and
	// readers never observe an empty value in between.
	assert.Eventually(t, func() bool {
		tok := refresher.Token()
		return tok != "" && tok != "token-1"
	}, time.Second, 2*time.Millisecond)
}

func TestRefresher_KeepsStaleTokenOnFailure(t *testing.T) {
	var calls atomic.Int64
	fetch := func(ctx context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "good-token", nil
		}
		return "", fmt.Errorf("issuer down")
	}

	refresher := NewRefresher(fetch, 5*time.Millisecond)
	require.NoError(t, refresher.Start(context.Background()))
	defer refresher.Stop()

	// Let several failing refreshes happen.
	assert.Eventually(t, func() bool {
		return calls.Load() >= 4
	}, time.Second, 2*time.Millisecond)

	assert.Equal(t, "good-token", refresher.Token())
}

func TestRefresher_InitialFailureRecoversLater(t *testing.T) {
	var calls atomic.Int64
	fetch := func(ctx context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "", fmt.Errorf("issuer down")
		}
		return "late-token", nil
	}

	refresher := NewRefresher(fetch, 5*time.Millisecond)
	err := refresher.Start(context.Background())
	require.Error(t, err)
	defer refresher.Stop()

	assert.Empty(t, refresher.Token())

	assert.Eventually(t, func() bool {
		return refresher.Token() == "late-token"
	}, time.Second, 2*time.Millisecond)
}

func TestRefresher_StopCancelsPendingSleep(t *testing.T) {
	fetch := func(ctx context.Context) (string, error) {
		return "token", nil
	}

	refresher := NewRefresher(fetch, time.Hour)
	require.NoError(t, refresher.Start(context.Background()))

	done := make(chan struct{})
	go func() {
		refresher.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return while the refresher was sleeping")
	}
}

func TestStaticToken(t *testing.T) {
	assert.Equal(t, "abc", StaticToken("abc").Token())
}
