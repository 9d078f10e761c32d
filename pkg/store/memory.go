package store

import (
	"bytes"
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/joshuapare/rcolkit/pkg/tgi"
	"github.com/joshuapare/rcolkit/pkg/types"
)

// Memory is an in-process Store. It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	data map[tgi.Key][]byte
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{data: make(map[tgi.Key][]byte)}
}

func (m *Memory) Get(ctx context.Context, key tgi.Key) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.data[key]
	if !ok {
		return nil, types.NotFound("resource %s not found", key)
	}
	return bytes.Clone(b), nil
}

func (m *Memory) Put(ctx context.Context, key tgi.Key, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = bytes.Clone(data)
	return nil
}

func (m *Memory) Delete(ctx context.Context, key tgi.Key) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok {
		return types.NotFound("resource %s not found", key)
	}
	delete(m.data, key)
	return nil
}

func (m *Memory) Keys(ctx context.Context) ([]tgi.Key, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.SortedFunc(maps.Keys(m.data), tgi.Key.Compare), nil
}
