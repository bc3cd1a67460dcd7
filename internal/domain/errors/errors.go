package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrMalformedRequest = errors.New("malformed request")
	ErrNotAcceptable    = errors.New("not acceptable")
)

// ValidationError reports a semantic violation of a single field.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError constructs ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Fields returns the field-to-message payload sent back to clients.
func (e *ValidationError) Fields() map[string]string {
	return map[string]string{e.Field: e.Message}
}
