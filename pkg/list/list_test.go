package list

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rcolkit/pkg/types"
)

// counter records notifications from a list.
type counter struct{ n int }

func (c *counter) notify() { c.n++ }

// node is a parent-aware element used to exercise Binder/Cloner/Equaler.
type node struct {
	val    int
	notify func()
}

func (n *node) Bind(notify func()) { n.notify = notify }

func (n *node) CloneWithNotify(notify func()) *node {
	return &node{val: n.val, notify: notify}
}

func (n *node) Equal(o *node) bool {
	if n == nil || o == nil {
		return n == o
	}
	return n.val == o.val
}

func (n *node) SetVal(v int) {
	if v == n.val {
		return
	}
	n.val = v
	if n.notify != nil {
		n.notify()
	}
}

func TestList_CapacityInvariant(t *testing.T) {
	const k = 3
	var c counter
	l := New[uint32](k, c.notify)

	for i := range k {
		require.NoError(t, l.Append(uint32(i)))
	}
	err := l.Append(99)
	require.ErrorIs(t, err, types.ErrCapacityExceeded)
	require.Equal(t, k, l.Len())
	require.Equal(t, k, c.n, "failed append must not notify")
	require.True(t, l.Full())

	err = l.Insert(0, 42)
	require.ErrorIs(t, err, types.ErrCapacityExceeded)
	require.Equal(t, []uint32{0, 1, 2}, l.Items())
}

func TestList_FromRejectsOversize(t *testing.T) {
	_, err := From([]byte{1, 2, 3}, 2, nil)
	require.ErrorIs(t, err, types.ErrCapacityExceeded)

	var c counter
	l, err := From([]byte{1, 2}, 2, c.notify)
	require.NoError(t, err)
	require.Equal(t, 2, l.Len())
	require.Zero(t, c.n, "construction must not notify")
}

func TestList_NotificationCounts(t *testing.T) {
	var c counter
	l := New[string](Unbounded, c.notify)

	require.NoError(t, l.Append("a"))
	require.NoError(t, l.Append("c"))
	require.NoError(t, l.Insert(1, "b"))
	require.Equal(t, 3, c.n)
	require.Equal(t, []string{"a", "b", "c"}, l.Items())

	require.NoError(t, l.Set(1, "b"))
	require.Equal(t, 3, c.n, "setting an equal value must not notify")

	require.NoError(t, l.Set(1, "B"))
	require.Equal(t, 4, c.n)

	v, err := l.RemoveAt(0)
	require.NoError(t, err)
	require.Equal(t, "a", v)
	require.Equal(t, 5, c.n)

	require.True(t, l.Remove("c"))
	require.False(t, l.Remove("zzz"))
	require.Equal(t, 6, c.n)

	l.Clear()
	require.Equal(t, 7, c.n)
	require.Zero(t, l.Len())

	l.Clear()
	require.Equal(t, 7, c.n, "clearing an empty list is not a mutation")
}

func TestList_OutOfRange(t *testing.T) {
	l := New[int](Unbounded, nil)
	require.NoError(t, l.Append(1))

	_, err := l.Get(1)
	require.ErrorIs(t, err, types.ErrOutOfRange)
	require.ErrorIs(t, l.Set(-1, 0), types.ErrOutOfRange)
	require.ErrorIs(t, l.Insert(3, 0), types.ErrOutOfRange)
	_, err = l.RemoveAt(5)
	require.ErrorIs(t, err, types.ErrOutOfRange)
	require.Equal(t, 1, l.Len())
}

func TestList_BindsElementsOnInsert(t *testing.T) {
	var c counter
	l := New[*node](Unbounded, c.notify)
	n := &node{val: 1}
	require.NoError(t, l.Append(n))
	require.Equal(t, 1, c.n)

	n.SetVal(2)
	require.Equal(t, 2, c.n, "element mutation must reach the list owner")

	n.SetVal(2)
	require.Equal(t, 2, c.n)
}

func TestList_DetachesDisplacedElements(t *testing.T) {
	var c counter
	a, b, d := &node{val: 1}, &node{val: 2}, &node{val: 3}
	l, err := From([]*node{a, b, d}, Unbounded, c.notify)
	require.NoError(t, err)

	removed, err := l.RemoveAt(0)
	require.NoError(t, err)
	require.Same(t, a, removed)
	require.Equal(t, 1, c.n)
	a.SetVal(10)
	require.Equal(t, 1, c.n, "a removed element no longer reports to the list")

	require.NoError(t, l.Set(0, &node{val: 20}))
	require.Equal(t, 2, c.n)
	b.SetVal(21)
	require.Equal(t, 2, c.n, "a replaced element no longer reports to the list")

	l.Clear()
	require.Equal(t, 3, c.n)
	d.SetVal(30)
	require.Equal(t, 3, c.n, "cleared elements no longer report to the list")
}

func TestList_DuplicateStaysBound(t *testing.T) {
	var c counter
	n := &node{val: 1}
	l := New[*node](Unbounded, c.notify)
	require.NoError(t, l.Append(n))
	require.NoError(t, l.Append(n))
	require.Equal(t, 2, c.n)

	_, err := l.RemoveAt(1)
	require.NoError(t, err)
	n.SetVal(2)
	require.Equal(t, 4, c.n, "the copy still in the list keeps reporting")
}

func TestList_NilPointerElements(t *testing.T) {
	l := New[*node](Unbounded, nil)
	require.NoError(t, l.Append(nil))
	require.NoError(t, l.Set(0, &node{val: 1}))
	l.Clear()
	require.Zero(t, l.Len())
}

func TestList_SetUsesElementEquality(t *testing.T) {
	var c counter
	l, err := From([]*node{{val: 7}}, Unbounded, c.notify)
	require.NoError(t, err)

	require.NoError(t, l.Set(0, &node{val: 7}))
	require.Zero(t, c.n, "structurally equal element must not replace")

	require.NoError(t, l.Set(0, &node{val: 8}))
	require.Equal(t, 1, c.n)
	require.Equal(t, 0, l.IndexOf(&node{val: 8}))
}

func TestList_CloneWithNotify(t *testing.T) {
	var oldOwner, newOwner counter
	l, err := From([]*node{{val: 1}, {val: 2}}, 4, oldOwner.notify)
	require.NoError(t, err)

	clone := l.CloneWithNotify(newOwner.notify)
	require.True(t, l.Equal(clone))
	require.Equal(t, 4, clone.MaxSize())

	orig, _ := l.Get(0)
	copied, _ := clone.Get(0)
	require.NotSame(t, orig, copied)

	copied.SetVal(10)
	require.Equal(t, 1, newOwner.n)
	require.Zero(t, oldOwner.n, "clone mutations must not reach the old owner")
	require.Equal(t, 1, orig.val)

	require.NoError(t, clone.Append(&node{val: 3}))
	require.Equal(t, 2, l.Len())
	require.Equal(t, 3, clone.Len())
}

func TestList_CloneCopiesScalars(t *testing.T) {
	l, err := From([]int{1, 2, 3}, Unbounded, nil)
	require.NoError(t, err)
	clone := l.CloneWithNotify(nil)
	require.NoError(t, clone.Set(0, 100))

	v, _ := l.Get(0)
	require.Equal(t, 1, v)
}

func TestList_BindRewiresElements(t *testing.T) {
	var a, b counter
	n := &node{val: 1}
	l, err := From([]*node{n}, Unbounded, a.notify)
	require.NoError(t, err)

	l.Bind(b.notify)
	n.SetVal(5)
	require.NoError(t, l.Append(&node{val: 6}))

	require.Zero(t, a.n)
	require.Equal(t, 2, b.n)
}

func TestList_All(t *testing.T) {
	l, err := From([]string{"x", "y", "z"}, Unbounded, nil)
	require.NoError(t, err)

	var got []string
	for i, v := range l.All() {
		if i == 2 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []string{"x", "y"}, got)
}

func TestList_ZeroValueUsable(t *testing.T) {
	var l List[int]
	require.NoError(t, l.Append(1))
	require.Equal(t, 1, l.Len())
	require.Equal(t, Unbounded, l.MaxSize())
}
