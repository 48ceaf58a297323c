package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/iudanet/quotesync/internal/models"
)

// CategoryAll is the filter value meaning "no category filter"
const CategoryAll = "all"

// MetadataStorage defines typed access to the persisted settings and the session values
type MetadataStorage interface {
	// SaveLastSyncTimestamp saves the time of the last successful sync
	SaveLastSyncTimestamp(ctx context.Context, ts time.Time) error

	// GetLastSyncTimestamp returns the zero time if no sync has been performed yet
	GetLastSyncTimestamp(ctx context.Context) (time.Time, error)

	SaveSyncEnabled(ctx context.Context, enabled bool) error

	// GetSyncEnabled returns ok=false when the value was never persisted
	GetSyncEnabled(ctx context.Context) (enabled bool, ok bool, err error)

	SaveConflictStrategy(ctx context.Context, strategy string) error

	// GetConflictStrategy returns "" when the value was never persisted
	GetConflictStrategy(ctx context.Context) (string, error)

	SaveSyncInterval(ctx context.Context, interval time.Duration) error

	// GetSyncInterval returns 0 when the value was never persisted
	GetSyncInterval(ctx context.Context) (time.Duration, error)

	SaveSelectedCategory(ctx context.Context, category string) error

	// GetSelectedCategory returns CategoryAll when nothing was selected
	GetSelectedCategory(ctx context.Context) (string, error)

	SaveLastViewedQuote(ctx context.Context, q models.Quote) error

	// GetLastViewedQuote returns nil when nothing was viewed in this session
	GetLastViewedQuote(ctx context.Context) (*models.Quote, error)

	SaveLastFilteredCategory(ctx context.Context, category string) error
	GetLastFilteredCategory(ctx context.Context) (string, error)
}

// Metadata implements MetadataStorage on top of the persistent and session substrates
type Metadata struct {
	local   KVStore
	session KVStore
}

// NewMetadata creates typed accessors over two substrates
func NewMetadata(local, session KVStore) *Metadata {
	return &Metadata{local: local, session: session}
}

// getString читает строковое значение, возвращает ok=false если ключа нет
func getString(ctx context.Context, kv KVStore, key string) (string, bool, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(raw), true, nil
}

func (m *Metadata) SaveLastSyncTimestamp(ctx context.Context, ts time.Time) error {
	return m.local.Put(ctx, KeyLastSyncTimestamp, []byte(ts.UTC().Format(time.RFC3339Nano)))
}

func (m *Metadata) GetLastSyncTimestamp(ctx context.Context) (time.Time, error) {
	value, ok, err := getString(ctx, m.local, KeyLastSyncTimestamp)
	if err != nil || !ok {
		return time.Time{}, err
	}

	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, &Error{Op: "decode", Key: KeyLastSyncTimestamp, Err: err}
	}
	return ts, nil
}

func (m *Metadata) SaveSyncEnabled(ctx context.Context, enabled bool) error {
	return m.local.Put(ctx, KeySyncEnabled, []byte(strconv.FormatBool(enabled)))
}

func (m *Metadata) GetSyncEnabled(ctx context.Context) (bool, bool, error) {
	value, ok, err := getString(ctx, m.local, KeySyncEnabled)
	if err != nil || !ok {
		return false, false, err
	}

	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false, false, &Error{Op: "decode", Key: KeySyncEnabled, Err: err}
	}
	return enabled, true, nil
}

func (m *Metadata) SaveConflictStrategy(ctx context.Context, strategy string) error {
	return m.local.Put(ctx, KeyConflictResolution, []byte(strategy))
}

func (m *Metadata) GetConflictStrategy(ctx context.Context) (string, error) {
	value, _, err := getString(ctx, m.local, KeyConflictResolution)
	return value, err
}

// SaveSyncInterval хранит интервал в миллисекундах
func (m *Metadata) SaveSyncInterval(ctx context.Context, interval time.Duration) error {
	return m.local.Put(ctx, KeySyncInterval, []byte(strconv.FormatInt(interval.Milliseconds(), 10)))
}

func (m *Metadata) GetSyncInterval(ctx context.Context) (time.Duration, error) {
	value, ok, err := getString(ctx, m.local, KeySyncInterval)
	if err != nil || !ok {
		return 0, err
	}

	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &Error{Op: "decode", Key: KeySyncInterval, Err: err}
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func (m *Metadata) SaveSelectedCategory(ctx context.Context, category string) error {
	return m.local.Put(ctx, KeySelectedCategory, []byte(category))
}

func (m *Metadata) GetSelectedCategory(ctx context.Context) (string, error) {
	value, ok, err := getString(ctx, m.local, KeySelectedCategory)
	if err != nil {
		return CategoryAll, err
	}
	if !ok || value == "" {
		return CategoryAll, nil
	}
	return value, nil
}

func (m *Metadata) SaveLastViewedQuote(ctx context.Context, q models.Quote) error {
	data, err := json.Marshal(q)
	if err != nil {
		return &Error{Op: "encode", Key: KeyLastViewedQuote, Err: err}
	}
	return m.session.Put(ctx, KeyLastViewedQuote, data)
}

func (m *Metadata) GetLastViewedQuote(ctx context.Context) (*models.Quote, error) {
	raw, err := m.session.Get(ctx, KeyLastViewedQuote)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var q models.Quote
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, &Error{Op: "decode", Key: KeyLastViewedQuote, Err: err}
	}
	return &q, nil
}

func (m *Metadata) SaveLastFilteredCategory(ctx context.Context, category string) error {
	return m.session.Put(ctx, KeyLastFilteredCategory, []byte(category))
}

func (m *Metadata) GetLastFilteredCategory(ctx context.Context) (string, error) {
	value, _, err := getString(ctx, m.session, KeyLastFilteredCategory)
	return value, err
}
