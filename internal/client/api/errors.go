package api

import (
	"errors"
	"fmt"
)

// ErrNetwork is the class of all remote feed failures: transport errors,
// timeouts, non-2xx statuses and undecodable bodies.
var ErrNetwork = errors.New("network failure")

// NetworkError describes a failed call to the remote feed
type NetworkError struct {
	Err        error
	Op         string // fetch, push, ping
	StatusCode int    // 0 если ответ не получен
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: remote returned status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is(err, ErrNetwork)
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}
