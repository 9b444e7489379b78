// Package apperrors defines the error taxonomy shared by repositories,
// services and handlers. Handlers map these to a flash notice plus a
// redirect; raw errors never reach the client.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a referenced entity as absent.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is the single generic authentication
	// failure. Whether the email exists is never revealed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports malformed operator input, such as a
// non-positive dimension or an unknown room type.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation builds a ValidationError for a single field
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
