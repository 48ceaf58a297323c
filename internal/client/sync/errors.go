package sync

import "errors"

var (
	// ErrSyncInProgress is returned when a cycle is requested while another one runs
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrConflictNotFound is returned by ResolveManually for an unknown record id
	ErrConflictNotFound = errors.New("pending conflict not found")
)
