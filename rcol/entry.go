package rcol

import (
	"bytes"

	"github.com/joshuapare/rcolkit/pkg/codec"
	"github.com/joshuapare/rcolkit/pkg/tgi"
)

// ChunkEntry pairs a chunk key with its decoded body. The key's type selects
// the codec.
type ChunkEntry struct {
	key    tgi.Key
	block  Chunk
	notify func()
}

// NewChunkEntry returns an unbound entry. Adding it to a container's chunk
// list binds it, and block, to the container. Removing it detaches both.
func NewChunkEntry(key tgi.Key, block Chunk) *ChunkEntry {
	return &ChunkEntry{key: key, block: block}
}

// Key returns the chunk key.
func (e *ChunkEntry) Key() tgi.Key { return e.key }

// SetKey replaces the chunk key. Changing the type does not re-decode the
// body.
func (e *ChunkEntry) SetKey(k tgi.Key) {
	if k == e.key {
		return
	}
	e.key = k
	e.changed()
}

// Block returns the decoded body.
func (e *ChunkEntry) Block() Chunk { return e.block }

// SetBlock replaces the body and binds it to the entry's owner. The previous
// body is detached. A block has a single owner: c is rebound here and stops
// reporting to wherever it was bound before.
func (e *ChunkEntry) SetBlock(c Chunk) {
	if c == e.block {
		return
	}
	if e.block != nil {
		e.block.Bind(nil)
	}
	e.block = c
	if c != nil {
		c.Bind(e.notify)
	}
	e.changed()
}

// Bind implements list.Binder.
func (e *ChunkEntry) Bind(notify func()) {
	e.notify = notify
	if e.block != nil {
		e.block.Bind(notify)
	}
}

// CloneWithNotify implements list.Cloner.
func (e *ChunkEntry) CloneWithNotify(notify func()) *ChunkEntry {
	out := &ChunkEntry{key: e.key, notify: notify}
	if e.block != nil {
		out.block = e.block.CloneChunk(notify)
	}
	return out
}

// Equal reports whether both entries have the same key and serialize to the
// same bytes.
func (e *ChunkEntry) Equal(o *ChunkEntry) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.key != o.key {
		return false
	}
	if e.block == nil || o.block == nil {
		return e.block == o.block
	}
	a, err := codec.Marshal(e.block)
	if err != nil {
		return false
	}
	b, err := codec.Marshal(o.block)
	if err != nil {
		return false
	}
	return bytes.Equal(a, b)
}

func (e *ChunkEntry) changed() {
	if e.notify != nil {
		e.notify()
	}
}
