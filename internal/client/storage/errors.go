package storage

import (
	"errors"
	"fmt"
)

// Common client storage errors
var (
	// ErrStorage is the class of all persistence read/write failures
	ErrStorage = errors.New("storage failure")

	// ErrKeyNotFound indicates that the key has never been written
	ErrKeyNotFound = errors.New("key not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)

// Error wraps a substrate failure with the operation and key it happened on.
// errors.Is(err, ErrStorage) holds for every *Error.
type Error struct {
	Err error
	Op  string
	Key string
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is allows errors.Is(err, ErrStorage)
func (e *Error) Is(target error) bool {
	return target == ErrStorage
}
