package storage

import "context"

//go:generate moq -out kvstore_mock.go . KVStore

// KVStore is a flat byte-oriented key-value substrate.
// Two instances exist per client: a persistent one and a session-scoped one.
type KVStore interface {
	// Get returns the stored value
	// Returns ErrKeyNotFound if the key was never written
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}

// Persistent layout keys
const (
	KeyQuotes             = "quotes"
	KeySelectedCategory   = "selectedCategory"
	KeyLastSyncTimestamp  = "lastSyncTimestamp"
	KeySyncEnabled        = "syncEnabled"
	KeyConflictResolution = "conflictResolutionStrategy"
	KeySyncInterval       = "syncInterval"
)

// Session layout keys
const (
	KeyLastViewedQuote      = "lastViewedQuote"
	KeyLastFilteredCategory = "lastFilteredCategory"
	KeyPendingConflicts     = "pendingConflicts"
	KeyPendingPushes        = "pendingPushes"
)
