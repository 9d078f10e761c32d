package list

import (
	"iter"
	"reflect"
	"slices"

	"github.com/joshuapare/rcolkit/pkg/types"
)

// Unbounded is the MaxSize of a list without a length limit.
const Unbounded = 0

// Binder is implemented by elements that report their own mutations.
type Binder interface {
	Bind(notify func())
}

// Cloner is implemented by elements that deep-copy onto a new owner.
type Cloner[T any] interface {
	CloneWithNotify(notify func()) T
}

// Equaler is implemented by elements that define their own equality.
type Equaler[T any] interface {
	Equal(other T) bool
}

// List is an ordered, index-addressable sequence with an optional maximum
// length and a single owner callback. The zero value is an unbounded list
// with no callback.
type List[T any] struct {
	items  []T
	max    int
	notify func()
}

// New returns an empty list. maxSize of Unbounded disables the limit.
func New[T any](maxSize int, notify func()) *List[T] {
	return &List[T]{max: normalizeMax(maxSize), notify: notify}
}

// From returns a list holding a copy of items. It fails with
// types.ErrCapacityExceeded when len(items) > maxSize. Construction does not
// notify.
func From[T any](items []T, maxSize int, notify func()) (*List[T], error) {
	l := New[T](maxSize, notify)
	if l.max != Unbounded && len(items) > l.max {
		return nil, types.Capacity(l.max, len(items))
	}
	l.items = slices.Clone(items)
	for _, it := range l.items {
		l.bind(it)
	}
	return l, nil
}

func normalizeMax(n int) int {
	if n < 0 {
		return Unbounded
	}
	return n
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.items) }

// MaxSize returns the length limit, or Unbounded.
func (l *List[T]) MaxSize() int { return l.max }

// Full reports whether another Append would fail.
func (l *List[T]) Full() bool {
	return l.max != Unbounded && len(l.items) >= l.max
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, types.OutOfRange(i, len(l.items))
	}
	return l.items[i], nil
}

// Items returns a copy of the elements. Mutating the returned slice does not
// affect the list.
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

// All iterates index/element pairs in order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, it := range l.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	for i, it := range l.items {
		if equal(it, v) {
			return i
		}
	}
	return -1
}

// Insert places v at index i, shifting later elements right.
func (l *List[T]) Insert(i int, v T) error {
	if i < 0 || i > len(l.items) {
		return types.OutOfRange(i, len(l.items)+1)
	}
	if l.Full() {
		return types.Capacity(l.max, len(l.items)+1)
	}
	l.bind(v)
	l.items = slices.Insert(l.items, i, v)
	l.changed()
	return nil
}

// Append adds v at the end.
func (l *List[T]) Append(v T) error {
	return l.Insert(len(l.items), v)
}

// RemoveAt deletes the element at index i and returns it. A removed Binder
// element is detached from the list's callback.
func (l *List[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, types.OutOfRange(i, len(l.items))
	}
	v := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	l.unbind(v)
	l.changed()
	return v, nil
}

// Remove deletes the first element equal to v and reports whether one was found.
func (l *List[T]) Remove(v T) bool {
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	_, _ = l.RemoveAt(i)
	return true
}

// Set replaces the element at index i. Setting an equal value is a no-op.
// The displaced element is detached like a removed one.
func (l *List[T]) Set(i int, v T) error {
	if i < 0 || i >= len(l.items) {
		return types.OutOfRange(i, len(l.items))
	}
	if equal(l.items[i], v) {
		return nil
	}
	old := l.items[i]
	l.bind(v)
	l.items[i] = v
	l.unbind(old)
	l.changed()
	return nil
}

// Clear removes every element.
func (l *List[T]) Clear() {
	if len(l.items) == 0 {
		return
	}
	old := slices.Clone(l.items)
	clear(l.items)
	l.items = l.items[:0]
	for _, v := range old {
		l.unbind(v)
	}
	l.changed()
}


// Bind rewires the list, and every element implementing Binder, to notify.
func (l *List[T]) Bind(notify func()) {
	l.notify = notify
	for _, it := range l.items {
		l.bind(it)
	}
}

// CloneWithNotify returns an independent copy of the list wired to notify.
func (l *List[T]) CloneWithNotify(notify func()) *List[T] {
	out := &List[T]{max: l.max, notify: notify, items: make([]T, len(l.items))}
	for i, it := range l.items {
		if c, ok := any(it).(Cloner[T]); ok {
			out.items[i] = c.CloneWithNotify(notify)
			continue
		}
		out.items[i] = it
	}
	return out
}

// Equal reports whether both lists hold equal elements in the same order.
// The limit and callbacks are not compared.
func (l *List[T]) Equal(other *List[T]) bool {
	if l == nil || other == nil {
		return l == other
	}
	if len(l.items) != len(other.items) {
		return false
	}
	for i := range l.items {
		if !equal(l.items[i], other.items[i]) {
			return false
		}
	}
	return true
}

func (l *List[T]) bind(v T) {
	if b, ok := binder(v); ok {
		b.Bind(l.notify)
	}
}

// unbind detaches v unless the same element is still held at another index.
func (l *List[T]) unbind(v T) {
	b, ok := binder(v)
	if !ok {
		return
	}
	if t := reflect.TypeOf(v); t != nil && t.Comparable() {
		for _, it := range l.items {
			if any(it) == any(v) {
				return
			}
		}
	}
	b.Bind(nil)
}

// binder returns v as a Binder, skipping nil pointers.
func binder[T any](v T) (Binder, bool) {
	b, ok := any(v).(Binder)
	if !ok {
		return nil, false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	return b, true
}

func (l *List[T]) changed() {
	if l.notify != nil {
		l.notify()
	}
}

func equal[T any](a, b T) bool {
	if e, ok := any(a).(Equaler[T]); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
