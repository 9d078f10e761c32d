package vpxy

import (
	"fmt"

	"github.com/joshuapare/rcolkit/internal/format"
	"github.com/joshuapare/rcolkit/pkg/codec"
	"github.com/joshuapare/rcolkit/pkg/list"
	"github.com/joshuapare/rcolkit/pkg/tgi"
	"github.com/joshuapare/rcolkit/pkg/types"
	"github.com/joshuapare/rcolkit/rcol"
)

const (
	// Tag is the chunk key type handled by this codec.
	Tag uint32 = 0x736884F1
	// Magic is the restated four-character tag at the start of the body.
	Magic = "VPXY"
	// Version is the only version this codec writes.
	Version uint32 = 4

	restated byte = 0x02
	reserved      = 4
)

func init() {
	rcol.Register(Tag, New)
}

// Register binds the codec into reg.
func Register(reg *rcol.Registry) {
	reg.Register(Tag, New)
}

// BoundingBox is an axis-aligned box.
type BoundingBox struct {
	Min [3]float32
	Max [3]float32
}

// VPXY is a decoded VPXY chunk.
type VPXY struct {
	version   uint32
	entries   *list.List[*Entry]
	bounds    BoundingBox
	modular   bool
	footprint int32
	keys      *list.List[tgi.Key]
	notify    func()
}

var _ rcol.Chunk = (*VPXY)(nil)

// New returns an empty chunk at the current version. It satisfies
// rcol.Factory.
func New() rcol.Chunk {
	return newVPXY()
}

func newVPXY() *VPXY {
	v := &VPXY{version: Version}
	v.entries = list.New[*Entry](types.MaxByteCount, v.changed)
	v.keys = list.New[tgi.Key](types.MaxInt32Count, v.changed)
	return v
}

// Entries returns the link entries (at most 255).
func (v *VPXY) Entries() *list.List[*Entry] { return v.entries }

// Keys returns the trailing key table that entries index into.
func (v *VPXY) Keys() *list.List[tgi.Key] { return v.keys }

// Version returns the parsed version.
func (v *VPXY) Version() uint32 { return v.version }

// Bounds returns the bounding box.
func (v *VPXY) Bounds() BoundingBox { return v.bounds }

// SetBounds replaces the bounding box.
func (v *VPXY) SetBounds(b BoundingBox) {
	if b == v.bounds {
		return
	}
	v.bounds = b
	v.changed()
}

// Footprint returns the footprint key index and whether the chunk is modular.
func (v *VPXY) Footprint() (int32, bool) { return v.footprint, v.modular }

// SetFootprint makes the chunk modular with the given footprint key index.
func (v *VPXY) SetFootprint(index int32) {
	if v.modular && v.footprint == index {
		return
	}
	v.modular, v.footprint = true, index
	v.changed()
}

// ClearFootprint makes the chunk non-modular.
func (v *VPXY) ClearFootprint() {
	if !v.modular {
		return
	}
	v.modular, v.footprint = false, 0
	v.changed()
}

// Parse implements codec.Element.
func (v *VPXY) Parse(r *codec.Reader) error {
	r.ExpectTag(Magic)
	v.version = r.U32()
	r.Checkf(v.version == Version, "vpxy version %d, want %d", v.version, Version)
	ref := r.TableRef()

	count := int(r.U8())
	entries := make([]*Entry, 0, count)
	for i := 0; i < count && r.Err() == nil; i++ {
		entries = append(entries, parseEntry(r))
	}

	tc := r.U8()
	r.Checkf(tc == restated, "vpxy restated byte 0x%02x, want 0x%02x", tc, restated)
	for i := range v.bounds.Min {
		v.bounds.Min[i] = r.F32()
	}
	for i := range v.bounds.Max {
		v.bounds.Max[i] = r.F32()
	}
	pad := r.Bytes(reserved)
	r.Checkf(isZero(pad), "vpxy reserved bytes % x", pad)
	v.modular = r.U8() != 0
	v.footprint = 0
	if v.modular {
		v.footprint = r.I32()
	}
	if err := r.Err(); err != nil {
		return err
	}

	r.Checkf(r.Pos() == ref.Start(), "vpxy key table at 0x%x, body ends at 0x%x", ref.Start(), r.Pos())
	if err := r.Seek(ref.Start()); err != nil {
		return err
	}
	n := r.Count(int(r.I32()), format.KeySize, "vpxy key")
	keys := make([]tgi.Key, n)
	for i := range keys {
		keys[i] = tgi.Read(r, tgi.OrderTGI)
	}
	if err := r.Err(); err != nil {
		return err
	}
	r.Checkf(r.Pos() == ref.End(), "vpxy key table size %d, read %d", ref.Size, r.Pos()-ref.Start())

	var err error
	if v.entries, err = list.From(entries, types.MaxByteCount, v.changed); err != nil {
		return err
	}
	if v.keys, err = list.From(keys, types.MaxInt32Count, v.changed); err != nil {
		return err
	}
	return r.Err()
}

func parseEntry(r *codec.Reader) *Entry {
	at := r.Offset()
	switch kind := EntryKind(r.U8()); kind {
	case EntryList:
		e := &Entry{kind: EntryList, id: r.U8()}
		n := r.Count(int(r.U8()), 4, "vpxy entry index")
		idx := make([]int32, n)
		for i := range idx {
			idx[i] = r.I32()
		}
		e.indexes, _ = list.From(idx, types.MaxByteCount, e.changed)
		return e
	case EntrySingle:
		return &Entry{kind: EntrySingle, index: r.I32()}
	default:
		r.Fail(types.Malformed(at, "vpxy entry type 0x%02x", byte(kind)))
		return nil
	}
}

// Unparse implements codec.Element.
func (v *VPXY) Unparse(w *codec.Writer) error {
	w.Tag(Magic)
	w.U32(v.version)
	ref := w.ReserveTableRef()

	w.U8(uint8(v.entries.Len()))
	for i, e := range v.entries.All() {
		if e == nil {
			return types.Invalid("vpxy: entry %d is nil", i)
		}
		switch e.kind {
		case EntryList:
			w.U8(uint8(EntryList))
			w.U8(e.id)
			idx := e.indexItems()
			if len(idx) > types.MaxByteCount {
				return types.Capacity(types.MaxByteCount, len(idx))
			}
			w.U8(uint8(len(idx)))
			for _, n := range idx {
				w.I32(n)
			}
		case EntrySingle:
			w.U8(uint8(EntrySingle))
			w.I32(e.index)
		default:
			return fmt.Errorf("vpxy: entry %d: unknown kind %d", i, e.kind)
		}
	}

	w.U8(restated)
	for _, f := range v.bounds.Min {
		w.F32(f)
	}
	for _, f := range v.bounds.Max {
		w.F32(f)
	}
	w.Zero(reserved)
	if v.modular {
		w.U8(1)
		w.I32(v.footprint)
	} else {
		w.U8(0)
	}

	start := w.Pos()
	w.I32(int32(v.keys.Len()))
	for _, k := range v.keys.All() {
		tgi.Write(w, k, tgi.OrderTGI)
	}
	return w.PatchTableRef(ref, start)
}

// Bind implements rcol.Chunk.
func (v *VPXY) Bind(notify func()) { v.notify = notify }

// CloneChunk implements rcol.Chunk.
func (v *VPXY) CloneChunk(notify func()) rcol.Chunk {
	out := &VPXY{
		version:   v.version,
		bounds:    v.bounds,
		modular:   v.modular,
		footprint: v.footprint,
		notify:    notify,
	}
	out.entries = v.entries.CloneWithNotify(out.changed)
	out.keys = v.keys.CloneWithNotify(out.changed)
	return out
}

// Resolve returns the key an index refers to.
func (v *VPXY) Resolve(index int32) (tgi.Key, error) {
	return v.keys.Get(int(index))
}

func (v *VPXY) changed() {
	if v.notify != nil {
		v.notify()
	}
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
