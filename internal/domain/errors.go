package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrTodoNotFound       = errors.New("todo not found")
	ErrRateLimited        = errors.New("too many requests, slow down")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError reports a rejected input. Field names the input
// ("text", "description", "id", ...), Reason is the user-facing message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
