// Package stbl implements the string table chunk codec: a keyed list of
// UTF-16LE strings.
//
// Layout (little-endian):
//
//	Offset  Size  Description
//	 0x00    4    'S' 'T' 'B' 'L'
//	 0x04    1    Version (2)
//	 0x05    2    Reserved, zero
//	 0x07    4    Entry count
//	 0x0B    2    Reserved, zero
//	 0x0D   ...   Entries: u64 key, u32 length in UTF-16 code units, text
//
// Importing the package registers the codec in rcol.DefaultRegistry.
package stbl

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/joshuapare/rcolkit/pkg/codec"
	"github.com/joshuapare/rcolkit/pkg/list"
	"github.com/joshuapare/rcolkit/pkg/types"
	"github.com/joshuapare/rcolkit/rcol"
)

const (
	// Tag is the chunk key type handled by this codec.
	Tag uint32 = 0x220557DA
	// Magic is the restated four-character tag.
	Magic = "STBL"
	// Version is the only version this codec writes.
	Version uint8 = 2

	minEntrySize = 8 + 4
)

func init() {
	rcol.Register(Tag, New)
}

// Register binds the codec into reg.
func Register(reg *rcol.Registry) {
	reg.Register(Tag, New)
}

// Entry is one keyed string.
type Entry struct {
	Key  uint64
	Text string
}

// Table is a decoded string table.
type Table struct {
	version uint8
	entries *list.List[Entry]
	notify  func()
}

var _ rcol.Chunk = (*Table)(nil)

// New returns an empty table. It satisfies rcol.Factory.
func New() rcol.Chunk {
	return newTable()
}

func newTable() *Table {
	t := &Table{version: Version}
	t.entries = list.New[Entry](types.MaxInt32Count, t.changed)
	return t
}

// Entries returns the entries in file order.
func (t *Table) Entries() *list.List[Entry] { return t.entries }

// Lookup returns the text stored under key.
func (t *Table) Lookup(key uint64) (string, bool) {
	for _, e := range t.entries.All() {
		if e.Key == key {
			return e.Text, true
		}
	}
	return "", false
}

// Put stores text under key, replacing an existing entry in place or
// appending a new one. text must be valid UTF-8.
func (t *Table) Put(key uint64, text string) error {
	if !utf8.ValidString(text) {
		return types.Invalid("stbl: text for key 0x%016x is not valid UTF-8", key)
	}
	for i, e := range t.entries.All() {
		if e.Key == key {
			return t.entries.Set(i, Entry{Key: key, Text: text})
		}
	}
	return t.entries.Append(Entry{Key: key, Text: text})
}

// Parse implements codec.Element.
func (t *Table) Parse(r *codec.Reader) error {
	r.ExpectTag(Magic)
	t.version = r.U8()
	r.Checkf(t.version == Version, "stbl version %d, want %d", t.version, Version)
	res := r.U16()
	r.Checkf(res == 0, "stbl reserved 0x%04x", res)
	count := r.U32()
	res = r.U16()
	r.Checkf(res == 0, "stbl reserved 0x%04x", res)
	if count > math.MaxInt32 {
		return r.Failf("stbl count %d", count)
	}

	n := r.Count(int(count), minEntrySize, "stbl entry")
	entries := make([]Entry, 0, n)
	for i := 0; i < n && r.Err() == nil; i++ {
		key := r.U64()
		chars := r.U32()
		if chars > math.MaxInt32 {
			return r.Failf("stbl entry %d length %d", i, chars)
		}
		entries = append(entries, Entry{Key: key, Text: r.UTF16(int(chars))})
	}
	if err := r.Err(); err != nil {
		return err
	}

	var err error
	t.entries, err = list.From(entries, types.MaxInt32Count, t.changed)
	return err
}

// Unparse implements codec.Element.
func (t *Table) Unparse(w *codec.Writer) error {
	w.Tag(Magic)
	w.U8(t.version)
	w.U16(0)
	w.U32(uint32(t.entries.Len()))
	w.U16(0)
	for i, e := range t.entries.All() {
		w.U64(e.Key)
		at := w.Reserve(4)
		n, err := w.UTF16(e.Text)
		if err != nil {
			return fmt.Errorf("stbl: entry %d: %w", i, err)
		}
		if err := w.PatchU32(at, uint32(n)); err != nil {
			return err
		}
	}
	return nil
}

// Bind implements rcol.Chunk.
func (t *Table) Bind(notify func()) { t.notify = notify }

// CloneChunk implements rcol.Chunk.
func (t *Table) CloneChunk(notify func()) rcol.Chunk {
	out := &Table{version: t.version, notify: notify}
	out.entries = t.entries.CloneWithNotify(out.changed)
	return out
}

func (t *Table) changed() {
	if t.notify != nil {
		t.notify()
	}
}
