package errors

import (
	"fmt"
	"strings"
)

// ValidationError represents a validation failure with field-level details
type ValidationError struct {
	Field      string
	Message    string
	Violations []FieldViolation // set when several fields failed at once
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Violations) > 0 {
		messages := make([]string, len(e.Violations))
		for i, v := range e.Violations {
			messages[i] = v.Message
		}
		return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// FieldViolation is a single failing field collected during struct validation.
type FieldViolation struct {
	Field   string
	Message string
}

// NewValidationErrors folds several field violations into one ValidationError.
func NewValidationErrors(violations []FieldViolation) *ValidationError {
	if len(violations) == 1 {
		return NewValidationError(violations[0].Field, violations[0].Message)
	}
	return &ValidationError{Violations: violations}
}

// PreconditionError reports a caller bug detected at an operation boundary,
// such as a nil function value. It is raised with panic, never returned.
type PreconditionError struct {
	Operation string
	Message   string
}

// NewPreconditionError creates a new precondition error
func NewPreconditionError(operation, message string) *PreconditionError {
	return &PreconditionError{
		Operation: operation,
		Message:   message,
	}
}

// Error implements the error interface
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition violated in %s: %s", e.Operation, e.Message)
}
