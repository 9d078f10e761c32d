package rcol

import (
	"bytes"

	"github.com/joshuapare/rcolkit/internal/dirty"
	"github.com/joshuapare/rcolkit/internal/format"
	"github.com/joshuapare/rcolkit/pkg/list"
	"github.com/joshuapare/rcolkit/pkg/tgi"
	"github.com/joshuapare/rcolkit/pkg/types"
)

// Container is a decoded RCOL container.
//
// Resource keys and chunks are independent lists. Chunks may refer to
// resource keys by index; the container does not enforce those references.
type Container struct {
	version  uint32
	dataType uint32
	reserved uint32

	keys   *list.List[tgi.Key]
	chunks *list.List[*ChunkEntry]

	flag *dirty.Flag
	raw  []byte
	opts Options
}

// New returns an empty container with the default version. It starts dirty
// because it has no byte form yet.
func New(opts *Options) *Container {
	c := &Container{
		version: format.DefaultContainerVersion,
		flag:    dirty.NewDirty(nil),
		opts:    opts.resolve(),
	}
	c.keys = list.New[tgi.Key](types.MaxInt32Count, c.flag.Notifier())
	c.chunks = list.New[*ChunkEntry](types.MaxInt32Count, c.flag.Notifier())
	return c
}

// Version returns the container version.
func (c *Container) Version() uint32 { return c.version }

// SetVersion replaces the container version.
func (c *Container) SetVersion(v uint32) { c.setU32(&c.version, v) }

// DataType returns the data type header field.
func (c *Container) DataType() uint32 { return c.dataType }

// SetDataType replaces the data type header field.
func (c *Container) SetDataType(v uint32) { c.setU32(&c.dataType, v) }

// Reserved returns the reserved header field.
func (c *Container) Reserved() uint32 { return c.reserved }

// SetReserved replaces the reserved header field.
func (c *Container) SetReserved(v uint32) { c.setU32(&c.reserved, v) }

func (c *Container) setU32(field *uint32, v uint32) {
	if *field == v {
		return
	}
	*field = v
	c.flag.Mark()
}

// ResourceKeys returns the external resource key table. Mutations mark the
// container dirty.
func (c *Container) ResourceKeys() *list.List[tgi.Key] { return c.keys }

// Chunks returns the chunk list. Mutations, including mutations inside any
// entry or chunk body, mark the container dirty.
func (c *Container) Chunks() *list.List[*ChunkEntry] { return c.chunks }

// AddChunk appends a new entry for key holding block. Chunks have a single
// owner: a block still held by another container is rebound to c and that
// container stops tracking it. Pass block.CloneChunk(nil) to share content
// between containers.
func (c *Container) AddChunk(key tgi.Key, block Chunk) (*ChunkEntry, error) {
	e := NewChunkEntry(key, block)
	if err := c.chunks.Append(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Find returns the first chunk entry whose key equals key.
func (c *Container) Find(key tgi.Key) (*ChunkEntry, error) {
	for _, e := range c.chunks.All() {
		if e.Key() == key {
			return e, nil
		}
	}
	return nil, types.NotFound("chunk %s not found", key)
}

// FindType returns every chunk entry whose key type equals tag, in order.
func (c *Container) FindType(tag uint32) []*ChunkEntry {
	var out []*ChunkEntry
	for _, e := range c.chunks.All() {
		if e.Key().Type == tag {
			out = append(out, e)
		}
	}
	return out
}

// Dirty reports whether the in-memory state diverged from the last byte form.
func (c *Container) Dirty() bool { return c.flag.Dirty() }

// Mutations returns the number of mutations observed over the container's
// lifetime.
func (c *Container) Mutations() uint64 { return c.flag.Marks() }

// Options returns the options the container was created with.
func (c *Container) Options() Options { return c.opts }

// Clone returns an independent deep copy. The copy starts in the same
// clean/dirty state as c.
func (c *Container) Clone() *Container {
	out := &Container{
		version:  c.version,
		dataType: c.dataType,
		reserved: c.reserved,
		raw:      bytes.Clone(c.raw),
		opts:     c.opts,
	}
	if c.flag.Dirty() {
		out.flag = dirty.NewDirty(nil)
	} else {
		out.flag = dirty.New(nil)
	}
	out.keys = c.keys.CloneWithNotify(out.flag.Notifier())
	out.chunks = c.chunks.CloneWithNotify(out.flag.Notifier())
	return out
}

// Equal reports structural equality: header fields, resource keys, and
// per-chunk keys and bytes.
func (c *Container) Equal(o *Container) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.version == o.version &&
		c.dataType == o.dataType &&
		c.reserved == o.reserved &&
		c.keys.Equal(o.keys) &&
		c.chunks.Equal(o.chunks)
}
