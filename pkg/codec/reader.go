package codec

import (
	"fmt"

	"github.com/joshuapare/rcolkit/internal/buf"
	"github.com/joshuapare/rcolkit/pkg/types"
)

// Reader decodes little-endian fields from an in-memory slice. Offsets in
// errors are absolute: a sub-reader created with Sub keeps the stream offset
// of its first byte.
type Reader struct {
	data []byte
	pos  int
	base int64
	mode Mode
	err  error
}

// NewReader returns a reader over data positioned at 0.
func NewReader(data []byte, mode Mode) *Reader {
	return &Reader{data: data, mode: mode}
}

// NewReaderAt is NewReader for a slice whose first byte sits at stream
// offset base.
func NewReaderAt(data []byte, base int64, mode Mode) *Reader {
	return &Reader{data: data, base: base, mode: mode}
}

// Mode returns the validation mode.
func (r *Reader) Mode() Mode { return r.mode }

// Strict reports whether redundant checks are enforced.
func (r *Reader) Strict() bool { return r.mode == Strict }

// Err returns the first error encountered, if any.
func (r *Reader) Err() error { return r.err }

// Pos returns the position relative to the reader's first byte.
func (r *Reader) Pos() int { return r.pos }

// Offset returns the absolute stream offset of the next byte.
func (r *Reader) Offset() int64 { return r.base + int64(r.pos) }

// Len returns the size of the underlying slice.
func (r *Reader) Len() int { return len(r.data) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Seek moves to a reader-relative position in [0, Len].
func (r *Reader) Seek(pos int) error {
	if r.err != nil {
		return r.err
	}
	if pos < 0 || pos > len(r.data) {
		return r.Failf("seek to %d outside [0,%d]", pos, len(r.data))
	}
	r.pos = pos
	return nil
}

// Fail records err as the sticky error unless one is already set. It returns
// the sticky error.
func (r *Reader) Fail(err error) error {
	if r.err == nil {
		r.err = err
	}
	return r.err
}

// Failf records a types.ErrMalformed error at the current offset.
func (r *Reader) Failf(format string, args ...any) error {
	return r.Fail(types.Malformed(r.Offset(), format, args...))
}

// Checkf validates a redundant field. A false ok records
// types.ErrStrictValidation in Strict mode and is ignored in Lenient mode.
// The return value is ok.
func (r *Reader) Checkf(ok bool, format string, args ...any) bool {
	if !ok && r.mode == Strict {
		r.Fail(types.Strict(r.Offset(), format, args...))
	}
	return ok
}

// Finish closes a parse: in Strict mode unread trailing bytes are rejected.
func (r *Reader) Finish() error {
	if r.err != nil {
		return r.err
	}
	r.Checkf(r.Remaining() == 0, "%d trailing bytes", r.Remaining())
	return r.err
}

func (r *Reader) take(n int, what string) []byte {
	if r.err != nil {
		return nil
	}
	b, ok := buf.Slice(r.data, r.pos, n)
	if !ok {
		r.Failf("%s: need %d bytes, have %d", what, n, r.Remaining())
		return nil
	}
	r.pos += n
	return b
}

// U8 reads one byte.
func (r *Reader) U8() uint8 {
	b := r.take(1, "u8")
	if b == nil {
		return 0
	}
	return b[0]
}

// U16 reads a little-endian uint16.
func (r *Reader) U16() uint16 { return buf.U16LE(r.take(2, "u16")) }

// U32 reads a little-endian uint32.
func (r *Reader) U32() uint32 { return buf.U32LE(r.take(4, "u32")) }

// I32 reads a little-endian int32.
func (r *Reader) I32() int32 { return buf.I32LE(r.take(4, "i32")) }

// U64 reads a little-endian uint64.
func (r *Reader) U64() uint64 { return buf.U64LE(r.take(8, "u64")) }

// F32 reads a little-endian float32.
func (r *Reader) F32() float32 { return buf.F32LE(r.take(4, "f32")) }

// Bytes reads n bytes into a new slice.
func (r *Reader) Bytes(n int) []byte {
	b := r.take(n, "bytes")
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

// Rest reads every remaining byte into a new slice.
func (r *Reader) Rest() []byte {
	if r.err != nil {
		return nil
	}
	return r.Bytes(r.Remaining())
}

// Skip advances n bytes.
func (r *Reader) Skip(n int) {
	r.take(n, "skip")
}

// Tag reads a four-character magic.
func (r *Reader) Tag() [4]byte {
	var t [4]byte
	copy(t[:], r.take(4, "tag"))
	return t
}

// ExpectTag reads a four-character magic and checks it against want. The tag
// restates the chunk type already known from the key, so a mismatch is a
// strict-mode failure only.
func (r *Reader) ExpectTag(want string) [4]byte {
	at := r.Offset()
	t := r.Tag()
	if r.err == nil && string(t[:]) != want && r.mode == Strict {
		r.Fail(types.Strict(at, "tag %q, want %q", t[:], want))
	}
	return t
}

// Count validates a count field read from the stream: n must be
// non-negative and n elements of elemSize bytes must fit in the unread
// bytes. It returns n, or 0 after recording an error.
func (r *Reader) Count(n int, elemSize int, what string) int {
	if r.err != nil {
		return 0
	}
	if _, err := buf.CheckListBounds(len(r.data), r.pos, n, elemSize); err != nil {
		r.Failf("%s count %d: %v", what, n, err)
		return 0
	}
	return n
}

// Sub returns a reader over the next n bytes and advances past them.
func (r *Reader) Sub(n int) *Reader {
	start := r.Offset()
	b := r.take(n, "sub-block")
	if b == nil {
		return &Reader{base: start, mode: r.mode, err: r.err}
	}
	return &Reader{data: b, base: start, mode: r.mode}
}

// TableRef reads an offset/size pair and resolves it to a reader-relative
// table position. The table must lie inside the reader.
func (r *Reader) TableRef() TableRef {
	at := r.pos
	off := r.U32()
	size := r.U32()
	if r.err != nil {
		return TableRef{}
	}
	ref := TableRef{At: at, Offset: off, Size: size}
	start, ok := buf.AddOverflowSafe(at+4, int(off))
	if !ok {
		r.Failf("table offset 0x%x overflows", off)
		return TableRef{}
	}
	if _, ok := buf.Slice(r.data, start, int(size)); !ok {
		r.Failf("table [0x%x,+%d) outside %d bytes", start, size, len(r.data))
		return TableRef{}
	}
	return ref
}

// String returns a short description for error messages.
func (r *Reader) String() string {
	return fmt.Sprintf("reader{off=0x%x len=%d mode=%s}", r.Offset(), len(r.data), r.mode)
}
