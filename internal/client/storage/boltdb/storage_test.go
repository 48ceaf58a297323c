package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/quotesync/internal/client/storage"
)

// createTestStorage создает временное BoltDB хранилище
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "testdb.db")
	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакеты существуют
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketLocal, bucketSession} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	// Путь с нулевым символом даст ошибку
	store, err := New(context.Background(), string([]byte{0}))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "testdb.db"))
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.Nil(t, store.db)

	// Второй вызов Close ничего не делает
	assert.NoError(t, store.Close())

	// Операции после закрытия возвращают ErrStorageClosed
	_, err = store.Local().Get(context.Background(), "k")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, err, storage.ErrStorage)
}

func TestKV_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	kv := store.Local()

	_, err := kv.Get(ctx, storage.KeyQuotes)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, kv.Put(ctx, storage.KeyQuotes, []byte(`[]`)))
	got, err := kv.Get(ctx, storage.KeyQuotes)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	// Перезапись
	require.NoError(t, kv.Put(ctx, storage.KeyQuotes, []byte(`[1]`)))
	got, err = kv.Get(ctx, storage.KeyQuotes)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), got)

	require.NoError(t, kv.Delete(ctx, storage.KeyQuotes))
	_, err = kv.Get(ctx, storage.KeyQuotes)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Удаление отсутствующего ключа не ошибка
	assert.NoError(t, kv.Delete(ctx, "missing"))
}

func TestKV_BucketsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Local().Put(ctx, "shared", []byte("local")))
	require.NoError(t, store.Session().Put(ctx, "shared", []byte("session")))

	got, err := store.Local().Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, "local", string(got))

	got, err = store.Session().Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, "session", string(got))
}

func TestResetSession(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Local().Put(ctx, storage.KeySyncEnabled, []byte("true")))
	require.NoError(t, store.Session().Put(ctx, storage.KeyPendingPushes, []byte(`[]`)))

	require.NoError(t, store.ResetSession(ctx))

	_, err := store.Session().Get(ctx, storage.KeyPendingPushes)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// local не затронут
	got, err := store.Local().Get(ctx, storage.KeySyncEnabled)
	require.NoError(t, err)
	assert.Equal(t, "true", string(got))

	// session bucket снова доступен для записи
	assert.NoError(t, store.Session().Put(ctx, storage.KeyPendingPushes, []byte(`[]`)))
}

func TestKV_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Local().Put(ctx, storage.KeySelectedCategory, []byte("wisdom")))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Local().Get(ctx, storage.KeySelectedCategory)
	require.NoError(t, err)
	assert.Equal(t, "wisdom", string(got))
}

func TestInitBuckets_CreatesBuckets(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	// Открываем БД вручную без создания бакетов
	db, err := bbolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	defer db.Close()

	store := &Storage{db: db}
	require.NoError(t, store.initBuckets())

	err = db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketLocal, bucketSession} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	assert.NoError(t, err)
}

func TestKV_CanceledContext(t *testing.T) {
	store := createTestStorage(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Local().Put(ctx, "k", []byte("v"))
	assert.ErrorIs(t, err, context.Canceled)
}
