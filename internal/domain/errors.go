package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrSessionNotFound signals a missing or expired dialogue session or facet view.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidTransition signals an operation that the current dialogue stage does not accept.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrStepIncomplete signals that a form step is missing required fields.
	ErrStepIncomplete = errors.New("step incomplete")
	// ErrUnknownOption signals a role or problem outside the fixed option set.
	ErrUnknownOption = errors.New("unknown option")
	// ErrUnknownDimension signals a facet dimension outside the four known ones.
	ErrUnknownDimension = errors.New("unknown facet dimension")
	// ErrValidation signals malformed input.
	ErrValidation = errors.New("validation failed")
)

// MissingFieldsError wraps ErrStepIncomplete with the names of the empty required fields.
type MissingFieldsError struct {
	Step   int
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: step %d requires %v", ErrStepIncomplete.Error(), e.Step, e.Fields)
}

func (e *MissingFieldsError) Unwrap() error { return ErrStepIncomplete }

// NewMissingFields creates a step-incomplete error.
func NewMissingFields(step int, fields []string) error {
	return &MissingFieldsError{Step: step, Fields: fields}
}
