// Package services holds the business logic between the HTTP handlers,
// the workers and the database: signal ingestion, event queries, decision
// queries, DLQ management and prompt/model-config administration.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrAlreadyResolved is returned when acting on an already resolved DLQ entry
	ErrAlreadyResolved = errors.New("DLQ entry is already resolved")
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

// RejectionError marks a signal rejected by the pre-enrichment validator.
// The event is finalized as rejected and the message dropped without retry.
type RejectionError struct {
	Reason  string
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("signal rejected (%s): %s", e.Reason, e.Message)
}

// IsRejection checks if an error is a signal rejection
func IsRejection(err error) bool {
	var re *RejectionError
	return errors.As(err, &re)
}
