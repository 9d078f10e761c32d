package rcol

import (
	"bytes"
	"fmt"
	"math"

	"github.com/joshuapare/rcolkit/internal/format"
	"github.com/joshuapare/rcolkit/pkg/codec"
	"github.com/joshuapare/rcolkit/pkg/tgi"
)

// Unparse serializes the container and marks it clean.
//
// The header and key tables go first, then a zeroed chunk index. Each chunk
// body is written at the next 4-byte boundary and its position and length
// recorded; finally the index is patched in place.
func (c *Container) Unparse() ([]byte, error) {
	n := c.chunks.Len()
	m := c.keys.Len()
	if n > math.MaxInt32 || m > math.MaxInt32 {
		return nil, fmt.Errorf("rcol: %d chunks, %d keys: %w", n, m, format.ErrTooLarge)
	}

	w := codec.NewWriter(format.HeaderSize + (n+m)*format.KeySize + n*format.IndexEntrySize)
	hdr := make([]byte, format.HeaderSize)
	format.Header{
		Version:    c.version,
		DataType:   c.dataType,
		Reserved:   c.reserved,
		KeyCount:   int32(m),
		ChunkCount: int32(n),
	}.Encode(hdr)
	_, _ = w.Write(hdr)

	for _, e := range c.chunks.All() {
		tgi.Write(w, e.Key(), c.opts.KeyOrder)
	}
	for _, k := range c.keys.All() {
		tgi.Write(w, k, c.opts.KeyOrder)
	}

	indexAt := w.Reserve(n * format.IndexEntrySize)
	index := make([]format.IndexEntry, n)
	for i, e := range c.chunks.All() {
		if e.Block() == nil {
			return nil, fmt.Errorf("rcol: chunk %d %s has no body", i, e.Key())
		}
		body, err := codec.Marshal(e.Block())
		if err != nil {
			return nil, fmt.Errorf("rcol: chunk %d %s: %w", i, e.Key(), err)
		}
		w.Align(format.ChunkAlignment)
		pos := w.Pos()
		if uint64(pos) > math.MaxUint32 || uint64(len(body)) > math.MaxInt32 {
			return nil, fmt.Errorf("rcol: chunk %d at 0x%x (+%d): %w", i, pos, len(body), format.ErrTooLarge)
		}
		_, _ = w.Write(body)
		index[i] = format.IndexEntry{Position: uint32(pos), Length: int32(len(body))}
	}

	end := w.Pos()
	if err := w.Seek(indexAt); err != nil {
		return nil, err
	}
	for _, ie := range index {
		w.U32(ie.Position)
		w.I32(ie.Length)
	}
	if err := w.Seek(end); err != nil {
		return nil, err
	}

	c.raw = w.Bytes()
	c.flag.Clean()
	return bytes.Clone(c.raw), nil
}

// Bytes returns the container's byte form, re-serializing first when dirty.
func (c *Container) Bytes() ([]byte, error) {
	if c.flag.Dirty() || c.raw == nil {
		return c.Unparse()
	}
	return bytes.Clone(c.raw), nil
}
