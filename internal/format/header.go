package format

import (
	"fmt"
	"math"

	"github.com/joshuapare/rcolkit/internal/buf"
)

// Header is the fixed 20-byte prefix of an RCOL container.
type Header struct {
	Version    uint32
	DataType   uint32
	Reserved   uint32
	KeyCount   int32
	ChunkCount int32
}

// ParseHeader extracts the header fields. Counts are validated for sign only;
// table bounds are checked by the caller once it knows the key order.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("rcol header: %w", ErrTruncated)
	}
	h := Header{
		Version:    buf.U32LE(b[HeaderVersionOffset:]),
		DataType:   buf.U32LE(b[HeaderDataTypeOffset:]),
		Reserved:   buf.U32LE(b[HeaderReservedOffset:]),
		KeyCount:   buf.I32LE(b[HeaderKeyCountOffset:]),
		ChunkCount: buf.I32LE(b[HeaderChunkCountOffset:]),
	}
	if h.KeyCount < 0 {
		return Header{}, fmt.Errorf("rcol header: key count %d: %w", h.KeyCount, ErrNegativeCount)
	}
	if h.ChunkCount < 0 {
		return Header{}, fmt.Errorf("rcol header: chunk count %d: %w", h.ChunkCount, ErrNegativeCount)
	}
	return h, nil
}

// Encode writes the header into b[0:HeaderSize].
func (h Header) Encode(b []byte) {
	PutU32(b, HeaderVersionOffset, h.Version)
	PutU32(b, HeaderDataTypeOffset, h.DataType)
	PutU32(b, HeaderReservedOffset, h.Reserved)
	PutI32(b, HeaderKeyCountOffset, h.KeyCount)
	PutI32(b, HeaderChunkCountOffset, h.ChunkCount)
}

// TablesSize is the number of bytes occupied by the key tables and the chunk
// index that follow the header.
func (h Header) TablesSize() int {
	return (int(h.ChunkCount)+int(h.KeyCount))*KeySize + int(h.ChunkCount)*IndexEntrySize
}

// IndexEntry locates one chunk body. It is derived from chunk order and sizes
// at write time and is never kept as state.
type IndexEntry struct {
	Position uint32
	Length   int32
}

// ParseIndexEntry decodes one entry from b.
func ParseIndexEntry(b []byte) (IndexEntry, error) {
	if len(b) < IndexEntrySize {
		return IndexEntry{}, fmt.Errorf("chunk index: %w", ErrTruncated)
	}
	return IndexEntry{
		Position: buf.U32LE(b[IndexPositionOffset:]),
		Length:   buf.I32LE(b[IndexLengthOffset:]),
	}, nil
}

// Encode writes the entry into b[0:IndexEntrySize].
func (e IndexEntry) Encode(b []byte) {
	PutU32(b, IndexPositionOffset, e.Position)
	PutI32(b, IndexLengthOffset, e.Length)
}

// Locate validates the entry against a container of size bytes and returns
// the chunk body bounds.
func (e IndexEntry) Locate(size int) (start, end int, err error) {
	if e.Length < 0 {
		return 0, 0, fmt.Errorf("chunk length %d: %w", e.Length, ErrNegativeCount)
	}
	if uint64(e.Position) > math.MaxInt {
		return 0, 0, ErrIndexOutOfBounds
	}
	start = int(e.Position)
	end, ok := buf.AddOverflowSafe(start, int(e.Length))
	if !ok || end > size {
		return 0, 0, fmt.Errorf("chunk [0x%x,+%d) in %d bytes: %w", e.Position, e.Length, size, ErrIndexOutOfBounds)
	}
	return start, end, nil
}
