package tgi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rcolkit/pkg/codec"
)

func TestKey_Ordering(t *testing.T) {
	a := New(1, 1, 1)
	b := New(1, 1, 2)
	c := New(1, 2, 0)

	require.True(t, a.Less(b))
	require.True(t, b.Less(c))
	require.True(t, a.Less(c))
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, c.Compare(a))

	// type dominates group and instance
	require.True(t, New(1, 0xFFFFFFFF, ^uint64(0)).Less(New(2, 0, 0)))
}

func TestKey_EqualityAndHash(t *testing.T) {
	x := New(0x736884F1, 0, 0x1234)
	y := New(0x736884F1, 0, 0x1234)

	require.True(t, x.Equal(y))
	require.Zero(t, x.Compare(y))

	seen := map[Key]int{x: 1}
	require.Equal(t, 1, seen[y], "equal keys must hash equal")
}

func TestKey_StringRoundTrip(t *testing.T) {
	k := New(0x736884F1, 0x00000001, 0x0123456789ABCDEF)
	require.Equal(t, "0x736884F1-0x00000001-0x0123456789ABCDEF", k.String())

	back, err := Parse(k.String())
	require.NoError(t, err)
	require.Equal(t, k, back)

	lower, err := Parse("736884f1-1-123456789abcdef")
	require.NoError(t, err)
	require.Equal(t, k, lower)
}

func TestKey_ParseErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"0x1-0x2",
		"0x1-0x2-0x3-0x4",
		"0x1FFFFFFFF-0x0-0x0",
		"0xZZ-0x0-0x0",
		"0x0-0x0-0x1FFFFFFFFFFFFFFFF",
	} {
		_, err := Parse(s)
		require.Error(t, err, s)
	}
}

func TestKey_JSONText(t *testing.T) {
	k := New(1, 2, 3)
	b, err := json.Marshal(map[string]Key{"k": k})
	require.NoError(t, err)
	require.JSONEq(t, `{"k":"0x00000001-0x00000002-0x0000000000000003"}`, string(b))

	var out map[string]Key
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, k, out["k"])
}

func TestSort(t *testing.T) {
	keys := []Key{New(2, 0, 0), New(1, 2, 0), New(1, 1, 2), New(1, 1, 1)}
	Sort(keys)
	require.Equal(t, []Key{New(1, 1, 1), New(1, 1, 2), New(1, 2, 0), New(2, 0, 0)}, keys)
}

func TestOrder_ReadWrite(t *testing.T) {
	k := New(0xAABBCCDD, 0x11223344, 0x0102030405060708)
	for _, o := range []Order{OrderTGI, OrderITG, OrderIGT} {
		w := codec.NewWriter(16)
		Write(w, k, o)
		require.Len(t, w.Bytes(), 16, o.String())

		r := codec.NewReader(w.Bytes(), codec.Strict)
		require.Equal(t, k, Read(r, o), o.String())
		require.NoError(t, r.Finish())
	}

	w := codec.NewWriter(16)
	Write(w, k, OrderITG)
	require.Equal(t, byte(0x08), w.Bytes()[0], "ITG starts with the instance")
}

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder("ITG")
	require.NoError(t, err)
	require.Equal(t, OrderITG, o)

	o, err = ParseOrder("")
	require.NoError(t, err)
	require.Equal(t, OrderTGI, o)

	_, err = ParseOrder("GTI")
	require.Error(t, err)
}

func TestKey_Element(t *testing.T) {
	k := New(5, 6, 7)
	b, err := codec.Marshal(&k)
	require.NoError(t, err)

	var out Key
	require.NoError(t, codec.Unmarshal(b, &out, codec.Strict))
	require.Equal(t, k, out)

	require.Error(t, codec.Unmarshal(b[:10], &out, codec.Lenient))
}

func TestOwned_Notifications(t *testing.T) {
	n := 0
	o := NewOwned(New(1, 2, 3), func() { n++ })

	o.Set(New(1, 2, 3))
	o.SetType(1)
	require.Zero(t, n, "assigning the current value is not a mutation")

	o.SetGroup(9)
	o.SetInstance(10)
	o.SetType(4)
	require.Equal(t, 3, n)
	require.Equal(t, New(4, 9, 10), o.Get())

	m := 0
	c := o.CloneWithNotify(func() { m++ })
	require.True(t, c.Equal(o))
	c.SetType(5)
	require.Equal(t, 1, m)
	require.Equal(t, 3, n)
	require.False(t, c.Equal(o))
}
