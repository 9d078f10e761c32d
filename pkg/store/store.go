package store

import (
	"context"
	"fmt"

	"github.com/joshuapare/rcolkit/pkg/tgi"
	"github.com/joshuapare/rcolkit/rcol"
)

// Store is a key-addressed byte store. Implementations return an error
// matching types.ErrNotFound for missing keys.
type Store interface {
	Get(ctx context.Context, key tgi.Key) ([]byte, error)
	Put(ctx context.Context, key tgi.Key, data []byte) error
	Delete(ctx context.Context, key tgi.Key) error
	// Keys returns every stored key in ascending order.
	Keys(ctx context.Context) ([]tgi.Key, error)
}

// Load fetches key and parses it as a container.
func Load(ctx context.Context, s Store, key tgi.Key, opts *rcol.Options) (*rcol.Container, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	c, err := rcol.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", key, err)
	}
	return c, nil
}

// Save serializes c, re-encoding only when it is dirty, and stores it under
// key.
func Save(ctx context.Context, s Store, key tgi.Key, c *rcol.Container) error {
	data, err := c.Bytes()
	if err != nil {
		return fmt.Errorf("store: save %s: %w", key, err)
	}
	return s.Put(ctx, key, data)
}
