package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/client/storage/memory"
	"github.com/iudanet/quotesync/internal/models"
)

func newTestMetadata() (*storage.Metadata, *memory.Store, *memory.Store) {
	local, session := memory.New(), memory.New()
	return storage.NewMetadata(local, session), local, session
}

func TestMetadata_LastSyncTimestamp(t *testing.T) {
	ctx := context.Background()
	md, _, _ := newTestMetadata()

	// Изначально - нулевое время
	ts, err := md.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	expected := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, md.SaveLastSyncTimestamp(ctx, expected))

	ts, err = md.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.True(t, expected.Equal(ts))
}

func TestMetadata_SyncEnabled(t *testing.T) {
	ctx := context.Background()
	md, _, _ := newTestMetadata()

	_, ok, err := md.GetSyncEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, md.SaveSyncEnabled(ctx, false))
	enabled, ok, err := md.GetSyncEnabled(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, enabled)
}

func TestMetadata_SyncInterval(t *testing.T) {
	ctx := context.Background()
	md, local, _ := newTestMetadata()

	d, err := md.GetSyncInterval(ctx)
	require.NoError(t, err)
	assert.Zero(t, d)

	require.NoError(t, md.SaveSyncInterval(ctx, 45*time.Second))
	d, err = md.GetSyncInterval(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, d)

	// хранится в миллисекундах
	raw, err := local.Get(ctx, storage.KeySyncInterval)
	require.NoError(t, err)
	assert.Equal(t, "45000", string(raw))
}

func TestMetadata_CorruptValues(t *testing.T) {
	ctx := context.Background()
	md, local, _ := newTestMetadata()

	require.NoError(t, local.Put(ctx, storage.KeySyncEnabled, []byte("maybe")))
	require.NoError(t, local.Put(ctx, storage.KeySyncInterval, []byte("soon")))
	require.NoError(t, local.Put(ctx, storage.KeyLastSyncTimestamp, []byte("yesterday")))

	_, _, err := md.GetSyncEnabled(ctx)
	assert.ErrorIs(t, err, storage.ErrStorage)

	_, err = md.GetSyncInterval(ctx)
	assert.ErrorIs(t, err, storage.ErrStorage)

	_, err = md.GetLastSyncTimestamp(ctx)
	assert.ErrorIs(t, err, storage.ErrStorage)
}

func TestMetadata_SelectedCategory(t *testing.T) {
	ctx := context.Background()
	md, _, _ := newTestMetadata()

	category, err := md.GetSelectedCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, storage.CategoryAll, category)

	require.NoError(t, md.SaveSelectedCategory(ctx, "wisdom"))
	category, err = md.GetSelectedCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, "wisdom", category)
}

func TestMetadata_SessionValues(t *testing.T) {
	ctx := context.Background()
	md, local, session := newTestMetadata()

	q, err := md.GetLastViewedQuote(ctx)
	require.NoError(t, err)
	assert.Nil(t, q)

	now := time.Now().UTC().Truncate(time.Second)
	viewed := models.Quote{ID: "local_1", Text: "t", Category: "life", DateAdded: now, LastModified: now, Source: models.SourceLocal}
	require.NoError(t, md.SaveLastViewedQuote(ctx, viewed))
	require.NoError(t, md.SaveLastFilteredCategory(ctx, "life"))

	q, err = md.GetLastViewedQuote(ctx)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, viewed.ID, q.ID)
	assert.True(t, viewed.DateAdded.Equal(q.DateAdded))

	category, err := md.GetLastFilteredCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, "life", category)

	// Значения сессии не попадают в persistent substrate
	assert.Equal(t, 0, local.Keys())
	assert.Equal(t, 2, session.Keys())
}

func TestMetadata_SubstrateFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")

	kv := &storage.KVStoreMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, &storage.Error{Op: "get", Key: key, Err: boom}
		},
		PutFunc: func(ctx context.Context, key string, value []byte) error {
			return &storage.Error{Op: "put", Key: key, Err: boom}
		},
	}
	md := storage.NewMetadata(kv, kv)

	err := md.SaveSyncEnabled(ctx, true)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, storage.ErrStorage)

	category, err := md.GetSelectedCategory(ctx)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, storage.CategoryAll, category)

	assert.Len(t, kv.PutCalls(), 1)
	assert.Equal(t, storage.KeySyncEnabled, kv.PutCalls()[0].Key)
}
