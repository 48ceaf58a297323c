package data

import (
	"errors"
	"fmt"
)

var (
	// ErrImportFormat indicates that an import payload was rejected as a whole
	ErrImportFormat = errors.New("invalid import format")

	// ErrNoQuotes is returned when a random quote is requested from an empty selection
	ErrNoQuotes = errors.New("no quotes available")
)

// ImportFormatError describes why an import payload was rejected
type ImportFormatError struct {
	Err    error
	Reason string
}

func (e *ImportFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ImportFormatError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is(err, ErrImportFormat)
func (e *ImportFormatError) Is(target error) bool {
	return target == ErrImportFormat
}
