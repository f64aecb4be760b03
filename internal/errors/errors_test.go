package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestCredentialError(t *testing.T) {
	err := NewCredentialError(nil)

	if err.Error() != "credential unavailable: no token issued yet" {
		t.Fatalf("Error message = %q", err.Error())
	}

	if !IsCredentialError(err) {
		t.Fatalf("IsCredentialError returned false for CredentialError")
	}

	cause := stdErrors.New("connection refused")
	wrapped := fmt.Errorf("fetching token: %w", NewCredentialError(cause))
	if !IsCredentialError(wrapped) {
		t.Fatalf("IsCredentialError returned false for wrapped CredentialError")
	}
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("wrapped CredentialError lost its cause")
	}
}

func TestGameNotFoundError(t *testing.T) {
	err := NewGameNotFoundError("some game")

	if err.Keyword != "some game" {
		t.Fatalf("Keyword = %q, want %q", err.Keyword, "some game")
	}

	if !IsGameNotFoundError(err) {
		t.Fatalf("IsGameNotFoundError returned false for GameNotFoundError")
	}

	wrapped := stdErrors.Join(err)
	if !IsGameNotFoundError(wrapped) {
		t.Fatalf("IsGameNotFoundError returned false for wrapped GameNotFoundError")
	}

	if IsNoCandidatesError(err) {
		t.Fatalf("IsNoCandidatesError returned true for GameNotFoundError")
	}
}

func TestNoCandidatesError(t *testing.T) {
	err := NewNoCandidatesError("gibberish")

	if !IsNoCandidatesError(err) {
		t.Fatalf("IsNoCandidatesError returned false for NoCandidatesError")
	}

	wrapped := stdErrors.Join(err)
	if !IsNoCandidatesError(wrapped) {
		t.Fatalf("IsNoCandidatesError returned false for wrapped NoCandidatesError")
	}
}

func TestRemoteError(t *testing.T) {
	err := NewRemoteError("search-game", 502)

	expected := "search-game: catalog returned code 502"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsRemoteError(err) {
		t.Fatalf("IsRemoteError returned false for RemoteError")
	}
}

func TestOrgNotFoundError(t *testing.T) {
	err := NewOrgNotFoundError(42, 1)

	expected := "organization 42 lookup returned code 1"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsOrgNotFoundError(err) {
		t.Fatalf("IsOrgNotFoundError returned false for OrgNotFoundError")
	}

	if IsRemoteError(err) {
		t.Fatalf("IsRemoteError returned true for OrgNotFoundError")
	}
}

func TestFetchError(t *testing.T) {
	err := NewFetchError("http://x/y.webp", 404)

	expected := "unexpected status 404 downloading cover from http://x/y.webp"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsFetchError(err) {
		t.Fatalf("IsFetchError returned false for FetchError")
	}
}

func TestConvertError(t *testing.T) {
	cause := stdErrors.New("image: unknown format")
	err := NewConvertError("/tmp/main_pic.webp", cause)

	if !IsConvertError(err) {
		t.Fatalf("IsConvertError returned false for ConvertError")
	}

	if !stdErrors.Is(err, cause) {
		t.Fatalf("ConvertError lost its cause")
	}

	wrapped := stdErrors.Join(err, stdErrors.New("cleanup also failed"))
	if !IsConvertError(wrapped) {
		t.Fatalf("IsConvertError returned false for joined ConvertError")
	}
}
