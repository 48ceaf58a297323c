package boltdb

import (
	"bytes"
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/quotesync/internal/client/storage"
)

// bucketKV реализует storage.KVStore поверх одного bucket
type bucketKV struct {
	s    *Storage
	name []byte
}

var _ storage.KVStore = (*bucketKV)(nil)

func (b *bucketKV) Get(ctx context.Context, key string) ([]byte, error) {
	if err := b.check(ctx, "get", key); err != nil {
		return nil, err
	}

	var value []byte
	err := b.s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(b.name)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", b.name)
		}

		// данные валидны только внутри транзакции
		if data := bucket.Get([]byte(key)); data != nil {
			value = bytes.Clone(data)
		}
		return nil
	})
	if err != nil {
		return nil, &storage.Error{Op: "get", Key: key, Err: err}
	}
	if value == nil {
		return nil, storage.ErrKeyNotFound
	}

	return value, nil
}

func (b *bucketKV) Put(ctx context.Context, key string, value []byte) error {
	if err := b.check(ctx, "put", key); err != nil {
		return err
	}

	err := b.s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(b.name)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", b.name)
		}
		return bucket.Put([]byte(key), value)
	})
	if err != nil {
		return &storage.Error{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (b *bucketKV) Delete(ctx context.Context, key string) error {
	if err := b.check(ctx, "delete", key); err != nil {
		return err
	}

	err := b.s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(b.name)
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(key))
	})
	if err != nil {
		return &storage.Error{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (b *bucketKV) check(ctx context.Context, op, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.s.db == nil {
		return &storage.Error{Op: op, Key: key, Err: storage.ErrStorageClosed}
	}
	return nil
}
