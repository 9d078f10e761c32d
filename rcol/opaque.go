package rcol

import (
	"bytes"

	"github.com/joshuapare/rcolkit/pkg/codec"
)

// OpaqueChunk is the wildcard codec: it keeps the exact bytes it was given
// and writes them back unmodified. It never interprets the body.
type OpaqueChunk struct {
	data   []byte
	notify func()
}

// NewOpaqueChunk returns a chunk holding a copy of data.
func NewOpaqueChunk(data []byte) *OpaqueChunk {
	return &OpaqueChunk{data: bytes.Clone(data)}
}

// Parse consumes every remaining byte of r.
func (o *OpaqueChunk) Parse(r *codec.Reader) error {
	o.data = r.Rest()
	if o.data == nil {
		o.data = []byte{}
	}
	return r.Err()
}

// Unparse writes the stored bytes.
func (o *OpaqueChunk) Unparse(w *codec.Writer) error {
	_, err := w.Write(o.data)
	return err
}

// Data returns a copy of the stored bytes.
func (o *OpaqueChunk) Data() []byte { return bytes.Clone(o.data) }

// Len returns the body size.
func (o *OpaqueChunk) Len() int { return len(o.data) }

// SetData replaces the body. Identical bytes are a no-op.
func (o *OpaqueChunk) SetData(b []byte) {
	if bytes.Equal(b, o.data) {
		return
	}
	o.data = bytes.Clone(b)
	if o.data == nil {
		o.data = []byte{}
	}
	if o.notify != nil {
		o.notify()
	}
}

// Signature returns the first four bytes when they look like a printable
// magic, for diagnostics only.
func (o *OpaqueChunk) Signature() string {
	if len(o.data) < 4 {
		return ""
	}
	for _, c := range o.data[:4] {
		if c < 0x20 || c > 0x7e {
			return ""
		}
	}
	return string(o.data[:4])
}

// Bind implements Chunk.
func (o *OpaqueChunk) Bind(notify func()) { o.notify = notify }

// CloneChunk implements Chunk.
func (o *OpaqueChunk) CloneChunk(notify func()) Chunk {
	return &OpaqueChunk{data: bytes.Clone(o.data), notify: notify}
}

// Equal compares bodies.
func (o *OpaqueChunk) Equal(other *OpaqueChunk) bool {
	if o == nil || other == nil {
		return o == other
	}
	return bytes.Equal(o.data, other.data)
}
