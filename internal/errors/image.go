package errors

import (
	stdErrors "errors"
	"fmt"
)

// FetchError represents a non-2xx response while downloading a cover image.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("unexpected status %d downloading cover from %s", e.StatusCode, e.URL)
}

// NewFetchError creates a FetchError for the given URL and status code.
func NewFetchError(url string, statusCode int) *FetchError {
	return &FetchError{URL: url, StatusCode: statusCode}
}

// IsFetchError reports whether err is a FetchError (even when wrapped).
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return stdErrors.As(err, &fetchErr)
}

// ConvertError represents a failure decoding or re-encoding a downloaded cover.
type ConvertError struct {
	Path string
	Err  error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("converting cover %s: %v", e.Path, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// NewConvertError wraps a conversion failure for the given file.
func NewConvertError(path string, err error) *ConvertError {
	return &ConvertError{Path: path, Err: err}
}

// IsConvertError reports whether err is a ConvertError (even when wrapped).
func IsConvertError(err error) bool {
	var convErr *ConvertError
	return stdErrors.As(err, &convErr)
}
