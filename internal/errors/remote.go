package errors

import (
	stdErrors "errors"
	"fmt"
)

// RemoteError represents an unexpected nonzero response code from the catalog.
type RemoteError struct {
	Op   string // the catalog operation, e.g. "search-game"
	Code int    // the catalog response code
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: catalog returned code %d", e.Op, e.Code)
}

// NewRemoteError creates a RemoteError for the given operation and code.
func NewRemoteError(op string, code int) *RemoteError {
	return &RemoteError{Op: op, Code: code}
}

// IsRemoteError reports whether err is a RemoteError (even when wrapped).
func IsRemoteError(err error) bool {
	var remoteErr *RemoteError
	return stdErrors.As(err, &remoteErr)
}

// OrgNotFoundError is returned when an organization lookup fails with a
// nonzero catalog code.
type OrgNotFoundError struct {
	OrgID int64
	Code  int
}

func (e *OrgNotFoundError) Error() string {
	return fmt.Sprintf("organization %d lookup returned code %d", e.OrgID, e.Code)
}

// NewOrgNotFoundError creates an OrgNotFoundError for the given org id and code.
func NewOrgNotFoundError(orgID int64, code int) *OrgNotFoundError {
	return &OrgNotFoundError{OrgID: orgID, Code: code}
}

// IsOrgNotFoundError reports whether err is an OrgNotFoundError (even when wrapped).
func IsOrgNotFoundError(err error) bool {
	var orgErr *OrgNotFoundError
	return stdErrors.As(err, &orgErr)
}
