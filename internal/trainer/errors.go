package trainer

import (
	"errors"
	"fmt"

	"github.com/born-ml/softreg/internal/tensor"
)

// Precondition failures reported by RunEpoch. Match them with errors.Is.
var (
	ErrInvalidShape          = tensor.ErrInvalidShape
	ErrLabelOutOfRange       = errors.New("label out of range")
	ErrInvalidHyperparameter = errors.New("invalid hyperparameter")
)

// ValidationError provides detailed information about a rejected call.
type ValidationError struct {
	Kind    error  // One of the Err* sentinels above
	Details string // What was wrong, with the offending values
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("trainer: %v: %s", e.Kind, e.Details)
}

// Unwrap returns the sentinel so errors.Is works.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(kind error, format string, args ...any) error {
	return &ValidationError{Kind: kind, Details: fmt.Sprintf(format, args...)}
}
