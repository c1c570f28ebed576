package domain

import (
	"errors"
	"fmt"
)

// ErrNoProviderConfigured means neither the bell nor the global defaults name a
// TTS provider; the delivery attempt cannot proceed.
var ErrNoProviderConfigured = errors.New("no tts provider configured")

// ValidationError rejects malformed input at the command surface before any
// mutation happens.
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
