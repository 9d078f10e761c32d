// Package dirty tracks whether an owning node has diverged from its last
// serialized byte form.
//
// Every node in the container tree reports structural mutations through a
// plain func() callback. The owner holds a Flag; any callback flowing into it
// marks it dirty, and the owner re-serializes lazily the next time its bytes
// are requested.
//
// A Flag is NOT thread-safe. The container tree is single-threaded.
package dirty

// Flag is a dirty marker with an optional parent so that marks bubble up to
// every ancestor.
type Flag struct {
	dirty  bool
	marks  uint64
	parent func()
}

// New creates a clean flag. parent, when non-nil, is invoked on every mark.
func New(parent func()) *Flag {
	return &Flag{parent: parent}
}

// NewDirty creates a flag that starts dirty, for nodes built in memory that
// have no byte form yet.
func NewDirty(parent func()) *Flag {
	return &Flag{dirty: true, parent: parent}
}

// Mark records one mutation.
func (f *Flag) Mark() {
	f.dirty = true
	f.marks++
	if f.parent != nil {
		f.parent()
	}
}

// Notifier returns the callback children hold to report mutations.
func (f *Flag) Notifier() func() {
	return f.Mark
}

// Dirty reports whether a mutation happened since the last Clean.
func (f *Flag) Dirty() bool {
	return f.dirty
}

// Clean clears the dirty bit after a successful serialization. The mark
// counter is left untouched.
func (f *Flag) Clean() {
	f.dirty = false
}

// Marks returns the number of mutations recorded over the flag's lifetime.
func (f *Flag) Marks() uint64 {
	return f.marks
}

