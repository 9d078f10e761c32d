package rcol

import (
	"encoding/binary"

	"github.com/joshuapare/rcolkit/pkg/codec"
	"github.com/joshuapare/rcolkit/pkg/tgi"
)

type fixtureChunk struct {
	key  tgi.Key
	body []byte
}

// buildContainer lays out a container by hand: header, chunk keys, resource
// keys, index, then 4-byte aligned bodies.
func buildContainer(reserved uint32, chunks []fixtureChunk, resources []tgi.Key) []byte {
	le := binary.LittleEndian
	var b []byte
	b = le.AppendUint32(b, 3)
	b = le.AppendUint32(b, uint32(len(chunks)))
	b = le.AppendUint32(b, reserved)
	b = le.AppendUint32(b, uint32(len(resources)))
	b = le.AppendUint32(b, uint32(len(chunks)))
	appendKey := func(k tgi.Key) {
		b = le.AppendUint32(b, k.Type)
		b = le.AppendUint32(b, k.Group)
		b = le.AppendUint64(b, k.Instance)
	}
	for _, c := range chunks {
		appendKey(c.key)
	}
	for _, k := range resources {
		appendKey(k)
	}
	indexAt := len(b)
	b = append(b, make([]byte, 8*len(chunks))...)
	for i, c := range chunks {
		for len(b)%4 != 0 {
			b = append(b, 0)
		}
		le.PutUint32(b[indexAt+i*8:], uint32(len(b)))
		le.PutUint32(b[indexAt+i*8+4:], uint32(len(c.body)))
		b = append(b, c.body...)
	}
	return b
}

const counterTag uint32 = 0x00C0FFEE

// counterChunk is a fixed four-byte body used to exercise registered codecs.
type counterChunk struct {
	value  uint32
	notify func()
}

func newCounter() Chunk { return &counterChunk{} }

func (c *counterChunk) Parse(r *codec.Reader) error {
	c.value = r.U32()
	return r.Err()
}

func (c *counterChunk) Unparse(w *codec.Writer) error {
	w.U32(c.value)
	return nil
}

func (c *counterChunk) Bind(notify func()) { c.notify = notify }

func (c *counterChunk) CloneChunk(notify func()) Chunk {
	return &counterChunk{value: c.value, notify: notify}
}

func (c *counterChunk) set(v uint32) {
	if v == c.value {
		return
	}
	c.value = v
	if c.notify != nil {
		c.notify()
	}
}

func counterRegistry(withDefault bool) *Registry {
	reg := NewRegistry()
	reg.Register(counterTag, newCounter)
	if withDefault {
		reg.RegisterDefault(func() Chunk { return &OpaqueChunk{} })
	}
	return reg
}
