// Package format houses the low-level layout of the RCOL chunk container:
// header field offsets, the key and index table geometry, and helpers that
// decode/encode those fixed-size pieces. Higher-level packages orchestrate
// the data into a mutable object graph.
package format

// Container header layout (little-endian):
//
//	Offset  Size  Description
//	------  ----  ---------------------------------------------
//	 0x00    4    Version
//	 0x04    4    Data type (public chunk count in most files)
//	 0x08    4    Reserved
//	 0x0C    4    Resource key count (i32, external references)
//	 0x10    4    Chunk count (i32)
//	 0x14   ...   Chunk keys, resource keys, chunk index, chunk bodies
const (
	HeaderVersionOffset     = 0x00
	HeaderDataTypeOffset    = 0x04
	HeaderReservedOffset    = 0x08
	HeaderKeyCountOffset    = 0x0C
	HeaderChunkCountOffset  = 0x10
	HeaderSize              = 0x14
	DefaultContainerVersion = 3
)

// Resource key geometry. A key is always 16 bytes on disk regardless of the
// field order a particular table uses.
const (
	KeyTypeSize     = 4
	KeyGroupSize    = 4
	KeyInstanceSize = 8
	KeySize         = KeyTypeSize + KeyGroupSize + KeyInstanceSize
)

// Chunk index entry layout:
//
//	Offset  Size  Description
//	 0x00    4    Position (u32, absolute within the container)
//	 0x04    4    Length (i32)
const (
	IndexPositionOffset = 0x00
	IndexLengthOffset   = 0x04
	IndexEntrySize      = 8
)

const (
	// ChunkAlignment is the boundary every chunk body starts on. Gaps are
	// filled with zero bytes.
	ChunkAlignment = 4

	// ChunkAlignmentMask is ChunkAlignment - 1.
	ChunkAlignmentMask = ChunkAlignment - 1

	// TagSize is the width of a four-character chunk magic.
	TagSize = 4

	// TableRefSize is the width of an offset/size pair that points at a
	// trailing sub-table (two u32 fields).
	TableRefSize = 8
)
