// Package memory provides an in-process storage.KVStore used for tests and
// for running the client without a database file.
package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/iudanet/quotesync/internal/client/storage"
)

// Store is a map-backed KVStore safe for concurrent use
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWith, если задан, возвращается из каждой операции
	FailWith error
}

var _ storage.KVStore = (*Store)(nil)

// New creates an empty store
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := s.fail(ctx, "get", key); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	return bytes.Clone(value), nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := s.fail(ctx, "put", key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = bytes.Clone(value)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.fail(ctx, "delete", key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Keys returns the number of stored keys
func (s *Store) Keys() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *Store) fail(ctx context.Context, op, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.FailWith != nil {
		return &storage.Error{Op: op, Key: key, Err: s.FailWith}
	}
	return nil
}
