package finsite

import "github.com/kailas-cloud/finsite/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrSessionNotFound   = domain.ErrSessionNotFound
	ErrInvalidTransition = domain.ErrInvalidTransition
	ErrStepIncomplete    = domain.ErrStepIncomplete
	ErrUnknownOption     = domain.ErrUnknownOption
	ErrUnknownDimension  = domain.ErrUnknownDimension
	ErrValidation        = domain.ErrValidation
)

// MissingFieldsError lists the empty required fields of a blocked demo form step.
type MissingFieldsError = domain.MissingFieldsError
