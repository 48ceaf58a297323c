package models

import (
	"errors"
	"fmt"
)

// ErrValidation indicates that a record or a setting was rejected at the boundary
var ErrValidation = errors.New("validation failed")

// ValidationError describes which field was rejected and why
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is allows errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
