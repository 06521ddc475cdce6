// Package services implements the engine's store-backed domain operations:
// studies, batches, participants, events, agent contexts, comments, pairing,
// story artifacts, and survey responses.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrConflict is returned when an operation collides with existing state
	// (duplicate pairing, active participants blocking a delete, ...)
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized is returned when the caller may not perform the operation
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBatchStopped is returned when a batch is paused or deleting mid-run.
	// Workers treat it as retryable.
	ErrBatchStopped = errors.New("batch stopped")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
