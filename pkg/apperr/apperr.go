// Package apperr holds the error classes handlers translate to HTTP
// statuses. Wrap with fmt.Errorf("%w: ...") and test with errors.Is.
package apperr

import "errors"

var (
	// ErrValidation marks a bad request (missing or malformed fields).
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
)
