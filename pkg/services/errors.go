package services

import (
	"errors"
	"fmt"

	"github.com/signalhouse/postwatch/ent"
)

// Store operations surface exactly four error categories. Callers decide
// retry policy from the category, never from the underlying driver error.
var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict is returned when a claim or transition lost a race.
	ErrConflict = errors.New("conflicting state transition")

	// ErrUnavailable is returned for transient store failures; retry.
	ErrUnavailable = errors.New("store unavailable")

	// ErrInvariant is returned when a write would violate a data invariant.
	// Fatal: escalate, do not retry.
	ErrInvariant = errors.New("invariant violation")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// mapEntError folds driver-level errors into the store's error vocabulary.
func mapEntError(err error) error {
	switch {
	case err == nil:
		return nil
	case ent.IsNotFound(err):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case ent.IsConstraintError(err):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}
