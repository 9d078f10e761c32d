package codec

import (
	"fmt"
	"math"

	"github.com/joshuapare/rcolkit/internal/buf"
)

// Writer encodes little-endian fields into a growable buffer. It supports
// seeking back over written bytes so placeholders can be patched once the
// values they depend on are known.
type Writer struct {
	buf []byte
	pos int
}

// NewWriter returns an empty writer with capacity hint sizeHint.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, max(sizeHint, 0))}
}

// Pos returns the write cursor.
func (w *Writer) Pos() int { return w.pos }

// Len returns the number of bytes written so far (the high-water mark).
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the written bytes. The slice aliases the writer's buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Seek moves the cursor to pos in [0, Len].
func (w *Writer) Seek(pos int) error {
	if pos < 0 || pos > len(w.buf) {
		return fmt.Errorf("codec: seek to %d outside [0,%d]", pos, len(w.buf))
	}
	w.pos = pos
	return nil
}

// Write copies p at the cursor, overwriting or extending the buffer. It
// implements io.Writer and never fails.
func (w *Writer) Write(p []byte) (int, error) {
	end := w.pos + len(p)
	if end > len(w.buf) {
		w.buf = append(w.buf, make([]byte, end-len(w.buf))...)
	}
	copy(w.buf[w.pos:end], p)
	w.pos = end
	return len(p), nil
}

func (w *Writer) put(p []byte) {
	_, _ = w.Write(p)
}

// U8 writes one byte.
func (w *Writer) U8(v uint8) { w.put([]byte{v}) }

// U16 writes a little-endian uint16.
func (w *Writer) U16(v uint16) { w.put(buf.AppendU16LE(nil, v)) }

// U32 writes a little-endian uint32.
func (w *Writer) U32(v uint32) { w.put(buf.AppendU32LE(nil, v)) }

// I32 writes a little-endian int32.
func (w *Writer) I32(v int32) { w.U32(uint32(v)) }

// U64 writes a little-endian uint64.
func (w *Writer) U64(v uint64) { w.put(buf.AppendU64LE(nil, v)) }

// F32 writes a little-endian float32.
func (w *Writer) F32(v float32) { w.U32(math.Float32bits(v)) }

// Tag writes a four-character magic. Shorter strings are zero padded.
func (w *Writer) Tag(tag string) {
	var t [4]byte
	copy(t[:], tag)
	w.put(t[:])
}

// Zero writes n zero bytes.
func (w *Writer) Zero(n int) {
	if n > 0 {
		w.put(make([]byte, n))
	}
}

// Align pads with zero bytes until the cursor is a multiple of a.
func (w *Writer) Align(a int) {
	w.Zero(buf.Align(w.pos, a) - w.pos)
}

// Reserve writes n zero bytes and returns their position for a later patch.
func (w *Writer) Reserve(n int) int {
	at := w.pos
	w.Zero(n)
	return at
}

// PatchU32 overwrites the four bytes at at without moving the cursor.
func (w *Writer) PatchU32(at int, v uint32) error {
	if at < 0 || at+4 > len(w.buf) {
		return fmt.Errorf("codec: patch at %d outside [0,%d)", at, len(w.buf))
	}
	buf.PutU32LE(w.buf, at, v)
	return nil
}

// PatchI32 is PatchU32 for a signed value.
func (w *Writer) PatchI32(at int, v int32) error {
	return w.PatchU32(at, uint32(v))
}

// ReserveTableRef writes a zero offset/size pair and returns its handle.
func (w *Writer) ReserveTableRef() TableRef {
	return TableRef{At: w.Reserve(8)}
}

// PatchTableRef completes ref for a table that starts at start and ends at
// the cursor: offset = start - (ref.At + 4), size = Pos - start.
func (w *Writer) PatchTableRef(ref TableRef, start int) error {
	if start < ref.At+4 || start > w.pos {
		return fmt.Errorf("codec: table start %d not after offset field at %d", start, ref.At)
	}
	off := uint64(start - (ref.At + 4))
	size := uint64(w.pos - start)
	if off > math.MaxUint32 || size > math.MaxUint32 {
		return fmt.Errorf("codec: table ref (%d,%d) exceeds u32", off, size)
	}
	if err := w.PatchU32(ref.At, uint32(off)); err != nil {
		return err
	}
	return w.PatchU32(ref.At+4, uint32(size))
}
