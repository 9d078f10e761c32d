package store

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/joshuapare/rcolkit/pkg/tgi"
	"github.com/joshuapare/rcolkit/pkg/types"
)

var resourcesBucket = []byte("resources")

// BoltOptions tunes OpenBolt. The zero value is fine for production use.
type BoltOptions struct {
	// NoSync skips fsync after each commit. Only for tests.
	NoSync bool
	// Timeout bounds the wait for the file lock.
	// Default: 10s
	Timeout time.Duration
}

// Bolt is a Store backed by a single bbolt file.
type Bolt struct {
	db *bbolt.DB
}

var _ Store = (*Bolt)(nil)

// OpenBolt opens or creates the database at path.
func OpenBolt(path string, opt BoltOptions) (*Bolt, error) {
	bopt := *bbolt.DefaultOptions
	bopt.Timeout = opt.Timeout
	if bopt.Timeout == 0 {
		bopt.Timeout = 10 * time.Second
	}
	bopt.NoSync = opt.NoSync

	db, err := bbolt.Open(path, 0o644, &bopt)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(resourcesBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: init %s: %w", path, err)
	}
	return &Bolt{db: db}, nil
}

// Close releases the database file.
func (b *Bolt) Close() error { return b.db.Close() }

// Path returns the database file path.
func (b *Bolt) Path() string { return b.db.Path() }

func (b *Bolt) Get(ctx context.Context, key tgi.Key) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(resourcesBucket).Get(boltKey(key))
		if raw == nil {
			return types.NotFound("resource %s not found", key)
		}
		// raw is only valid inside the transaction.
		var err error
		out, err = decodeEnvelope(key, raw)
		return err
	})
	return out, err
}

func (b *Bolt) Put(ctx context.Context, key tgi.Key, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	val, err := encodeEnvelope(key, data)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(resourcesBucket).Put(boltKey(key), val)
	})
}

func (b *Bolt) Delete(ctx context.Context, key tgi.Key) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		bk := tx.Bucket(resourcesBucket)
		k := boltKey(key)
		if bk.Get(k) == nil {
			return types.NotFound("resource %s not found", key)
		}
		return bk.Delete(k)
	})
}

func (b *Bolt) Keys(ctx context.Context) ([]tgi.Key, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var keys []tgi.Key
	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(resourcesBucket).ForEach(func(k, _ []byte) error {
			key, ok := parseBoltKey(k)
			if !ok {
				return types.Malformed(types.NoOffset, "store: bolt key of %d bytes", len(k))
			}
			keys = append(keys, key)
			return nil
		})
	})
	return keys, err
}
