// Package errors defines the typed error taxonomy shared by the catalog
// client, the image pipeline and the lookup service.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// CredentialError represents a failed or missing client-credentials token.
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("credential unavailable: %v", e.Err)
	}
	return "credential unavailable: no token issued yet"
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// NewCredentialError wraps a token issuance failure. A nil cause means no
// token has ever been fetched successfully.
func NewCredentialError(err error) *CredentialError {
	return &CredentialError{Err: err}
}

// IsCredentialError reports whether err is a CredentialError (even when wrapped).
func IsCredentialError(err error) bool {
	var credErr *CredentialError
	return stdErrors.As(err, &credErr)
}
