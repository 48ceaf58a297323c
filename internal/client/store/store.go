// Package store keeps the in-memory quote collection and persists it to the
// local substrate.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/models"
)

// Store is an ordered collection of quotes with unique ids.
// Mutations never persist by themselves: callers invoke Save.
type Store struct {
	kv     storage.KVStore
	logger *slog.Logger
	now    func() time.Time

	mu  sync.RWMutex
	txn Txn
}

// Option configures Store
type Option func(*Store)

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store bound to the persistent substrate
func New(kv storage.KVStore, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		logger: logger,
		now:    time.Now,
		txn:    Txn{index: make(map[string]int)},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Update runs fn with exclusive access to the collection.
// If fn returns an error every mutation made inside it is rolled back.
func (s *Store) Update(fn func(tx *Txn) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup := s.txn.clone()
	if err := fn(&s.txn); err != nil {
		s.txn = backup
		return err
	}
	return nil
}

// View runs fn with shared read access. fn must not mutate tx.
func (s *Store) View(fn func(tx *Txn) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.txn)
}

// Upsert inserts q or replaces the record with the same id in place.
func (s *Store) Upsert(q models.Quote) (inserted bool, err error) {
	err = s.Update(func(tx *Txn) error {
		inserted, err = tx.Upsert(q)
		return err
	})
	return inserted, err
}

// Remove deletes the record with id; reports whether it existed
func (s *Store) Remove(id string) bool {
	var removed bool
	_ = s.Update(func(tx *Txn) error {
		removed = tx.Remove(id)
		return nil
	})
	return removed
}

// Clear removes every record
func (s *Store) Clear() {
	_ = s.Update(func(tx *Txn) error {
		tx.Clear()
		return nil
	})
}

// ResetToDefaults replaces the collection with the built-in default set
func (s *Store) ResetToDefaults() {
	defaults := models.DefaultQuotes(s.now())
	_ = s.Update(func(tx *Txn) error {
		tx.replaceAll(defaults)
		return nil
	})
}

func (s *Store) Get(id string) (models.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.txn.Get(id)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.txn.Len()
}

// snapshot копирует записи, чтобы yield не выполнялся под блокировкой
func (s *Store) snapshot() []models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.txn.records)
}

// All returns a restartable view over the collection in insertion order.
// Each iteration observes the collection as of its start.
func (s *Store) All() iter.Seq[models.Quote] {
	return func(yield func(models.Quote) bool) {
		for _, q := range s.snapshot() {
			if !yield(q) {
				return
			}
		}
	}
}

// ByCategory returns the records of one category in insertion order.
// "all" yields the whole collection.
func (s *Store) ByCategory(category string) iter.Seq[models.Quote] {
	category = models.NormalizeCategory(category)
	if category == "" || category == storage.CategoryAll {
		return s.All()
	}

	return func(yield func(models.Quote) bool) {
		for _, q := range s.snapshot() {
			if q.Category != category {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}

// Categories returns the sorted set of categories present in the collection
func (s *Store) Categories() []string {
	return slices.Sorted(maps.Keys(s.CategoryCounts()))
}

// CategoryCounts returns the number of records per category
func (s *Store) CategoryCounts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, q := range s.txn.records {
		counts[q.Category]++
	}
	return counts
}

// Load restores the collection from the persistent substrate.
//
// Absent payload: defaults are installed and written back.
// Corrupt payload: logged, defaults installed, no error.
// Read failure: defaults installed and the storage error is returned as a warning.
func (s *Store) Load(ctx context.Context) (fromDefaults bool, err error) {
	raw, err := s.kv.Get(ctx, storage.KeyQuotes)
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
		s.logger.Info("No saved quotes, using defaults")
		s.ResetToDefaults()
		if err := s.Save(ctx); err != nil {
			s.logger.Warn("Failed to save default quotes", "error", err)
		}
		return true, nil
	case err != nil:
		s.logger.Warn("Failed to read saved quotes, using defaults", "error", err)
		s.ResetToDefaults()
		return true, err
	}

	var stored []models.Quote
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.logger.Warn("Saved quotes are corrupt, using defaults", "error", err, "bytes", len(raw))
		s.ResetToDefaults()
		return true, nil
	}

	loaded := make([]models.Quote, 0, len(stored))
	for _, q := range stored {
		q.Normalize()
		if err := validate(q); err != nil {
			s.logger.Warn("Dropping invalid saved quote", "id", q.ID, "error", err)
			continue
		}
		loaded = append(loaded, q)
	}

	_ = s.Update(func(tx *Txn) error {
		tx.replaceAll(loaded)
		return nil
	})

	s.logger.Debug("Quotes loaded", "count", s.Len())
	return false, nil
}

// Save serializes the whole collection under the quotes key
func (s *Store) Save(ctx context.Context) error {
	data, err := s.encode()
	if err != nil {
		return &storage.Error{Op: "encode", Key: storage.KeyQuotes, Err: err}
	}

	if err := s.kv.Put(ctx, storage.KeyQuotes, data); err != nil {
		return err
	}

	s.logger.Debug("Quotes saved", "bytes", len(data))
	return nil
}

// PayloadSize returns the size in bytes of the serialized collection
func (s *Store) PayloadSize() int {
	data, err := s.encode()
	if err != nil {
		return 0
	}
	return len(data)
}

func (s *Store) encode() ([]byte, error) {
	records := s.snapshot()
	if records == nil {
		records = []models.Quote{}
	}
	return json.Marshal(records)
}
