package rcol

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/rcolkit/internal/dirty"
	"github.com/joshuapare/rcolkit/internal/format"
	"github.com/joshuapare/rcolkit/pkg/codec"
	"github.com/joshuapare/rcolkit/pkg/list"
	"github.com/joshuapare/rcolkit/pkg/tgi"
	"github.com/joshuapare/rcolkit/pkg/types"
)

// Parse decodes a container. The returned container is clean and Bytes
// returns a copy of data until it is mutated.
func Parse(data []byte, opts *Options) (*Container, error) {
	o := opts.resolve()

	h, err := format.ParseHeader(data)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindMalformed, Offset: 0, Msg: "rcol header", Err: err}
	}
	if o.Policy.Default == codec.Strict && h.Reserved != 0 {
		return nil, types.Strict(format.HeaderReservedOffset, "reserved header field 0x%08X", h.Reserved)
	}

	if h.TablesSize() > len(data)-format.HeaderSize {
		return nil, types.Malformed(format.HeaderSize, "tables need %d bytes, have %d", h.TablesSize(), len(data)-format.HeaderSize)
	}

	r := codec.NewReader(data, o.Policy.Default)
	r.Skip(format.HeaderSize)

	chunkKeys := readKeys(r, int(h.ChunkCount), o.KeyOrder, "chunk key")
	resourceKeys := readKeys(r, int(h.KeyCount), o.KeyOrder, "resource key")

	n := r.Count(int(h.ChunkCount), format.IndexEntrySize, "chunk index")
	indexAt := r.Pos()
	index := make([]format.IndexEntry, n)
	for i := range index {
		index[i] = format.IndexEntry{Position: r.U32(), Length: r.I32()}
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("rcol: %w", err)
	}

	entries := make([]*ChunkEntry, n)
	for i, ie := range index {
		key := chunkKeys[i]
		at := int64(indexAt + i*format.IndexEntrySize)
		start, end, err := ie.Locate(len(data))
		if err != nil {
			return nil, types.Malformed(at, "chunk %d %s: %v", i, key, err)
		}
		if o.Policy.Default == codec.Strict && format.Padding(start) != 0 {
			return nil, types.Strict(at, "chunk %d %s at unaligned offset 0x%x", i, key, start)
		}
		block, err := decodeChunk(data[start:end], int64(start), key, o)
		if err != nil {
			return nil, fmt.Errorf("rcol: chunk %d %s: %w", i, key, err)
		}
		entries[i] = NewChunkEntry(key, block)
	}

	c := &Container{
		version:  h.Version,
		dataType: h.DataType,
		reserved: h.Reserved,
		flag:     dirty.New(nil),
		raw:      bytes.Clone(data),
		opts:     o,
	}
	if c.keys, err = list.From(resourceKeys, types.MaxInt32Count, c.flag.Notifier()); err != nil {
		return nil, err
	}
	if c.chunks, err = list.From(entries, types.MaxInt32Count, c.flag.Notifier()); err != nil {
		return nil, err
	}
	return c, nil
}

func readKeys(r *codec.Reader, count int, order tgi.Order, what string) []tgi.Key {
	n := r.Count(count, format.KeySize, what)
	keys := make([]tgi.Key, n)
	for i := range keys {
		keys[i] = tgi.Read(r, order)
	}
	return keys
}

// decodeChunk resolves the codec for key and parses body, whose first byte
// sits at stream offset base.
func decodeChunk(body []byte, base int64, key tgi.Key, o Options) (Chunk, error) {
	factory, err := o.Registry.Resolve(key.Type)
	if err != nil {
		return nil, err
	}
	block := factory()
	r := codec.NewReaderAt(body, base, o.Policy.ModeFor(key.Type))
	if err := block.Parse(r); err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return block, nil
}

// DecodeChunk parses a standalone chunk body the way Parse would inside a
// container.
func DecodeChunk(body []byte, key tgi.Key, opts *Options) (Chunk, error) {
	return decodeChunk(body, 0, key, opts.resolve())
}
