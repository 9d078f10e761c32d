package vpxy

import (
	"slices"

	"github.com/joshuapare/rcolkit/pkg/list"
	"github.com/joshuapare/rcolkit/pkg/types"
)

// EntryKind selects the on-disk shape of an Entry.
type EntryKind uint8

const (
	// EntryList links a group of key indices under an id.
	EntryList EntryKind = 0x00
	// EntrySingle links exactly one key index.
	EntrySingle EntryKind = 0x01
)

// Entry is one link record.
type Entry struct {
	kind    EntryKind
	id      uint8
	index   int32
	indexes *list.List[int32]
	notify  func()
}

// NewListEntry returns an EntryList entry. At most 255 indices fit.
func NewListEntry(id uint8, indexes ...int32) (*Entry, error) {
	e := &Entry{kind: EntryList, id: id}
	l, err := list.From(indexes, types.MaxByteCount, e.changed)
	if err != nil {
		return nil, err
	}
	e.indexes = l
	return e, nil
}

// NewSingleEntry returns an EntrySingle entry.
func NewSingleEntry(index int32) *Entry {
	return &Entry{kind: EntrySingle, index: index}
}

// Kind returns the entry shape.
func (e *Entry) Kind() EntryKind { return e.kind }

// ID returns the group id of an EntryList entry.
func (e *Entry) ID() uint8 { return e.id }

// SetID replaces the group id.
func (e *Entry) SetID(id uint8) {
	if id == e.id {
		return
	}
	e.id = id
	e.changed()
}

// Indexes returns the key indices of an EntryList entry, or nil for an
// EntrySingle entry. A zero Entry gets an empty list on first use.
func (e *Entry) Indexes() *list.List[int32] {
	if e.kind == EntryList && e.indexes == nil {
		e.indexes = list.New[int32](types.MaxByteCount, e.changed)
	}
	return e.indexes
}

// indexItems returns the key indices, treating a missing list as empty.
func (e *Entry) indexItems() []int32 {
	if e.indexes == nil {
		return nil
	}
	return e.indexes.Items()
}

// Index returns the key index of an EntrySingle entry.
func (e *Entry) Index() int32 { return e.index }

// SetIndex replaces the key index of an EntrySingle entry.
func (e *Entry) SetIndex(i int32) {
	if i == e.index {
		return
	}
	e.index = i
	e.changed()
}

// Bind implements list.Binder.
func (e *Entry) Bind(notify func()) { e.notify = notify }

// CloneWithNotify implements list.Cloner.
func (e *Entry) CloneWithNotify(notify func()) *Entry {
	out := &Entry{kind: e.kind, id: e.id, index: e.index, notify: notify}
	if e.indexes != nil {
		out.indexes = e.indexes.CloneWithNotify(out.changed)
	}
	return out
}

// Equal implements list.Equaler.
func (e *Entry) Equal(o *Entry) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.kind != o.kind {
		return false
	}
	if e.kind == EntrySingle {
		return e.index == o.index
	}
	return e.id == o.id && slices.Equal(e.indexItems(), o.indexItems())
}

func (e *Entry) changed() {
	if e.notify != nil {
		e.notify()
	}
}
