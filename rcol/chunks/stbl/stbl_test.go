package stbl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rcolkit/pkg/codec"
	"github.com/joshuapare/rcolkit/pkg/tgi"
	"github.com/joshuapare/rcolkit/pkg/types"
	"github.com/joshuapare/rcolkit/rcol"
)

func TestTable_RoundTrip(t *testing.T) {
	tbl := newTable()
	require.NoError(t, tbl.Put(0x1111, "Sofa"))
	require.NoError(t, tbl.Put(0x2222, "Canapé 🛋"))
	require.NoError(t, tbl.Put(0x3333, ""))

	b, err := codec.Marshal(tbl)
	require.NoError(t, err)
	require.Equal(t, "STBL", string(b[:4]))

	out := newTable()
	require.NoError(t, codec.Unmarshal(b, out, codec.Strict))
	require.True(t, tbl.Entries().Equal(out.Entries()))

	text, ok := out.Lookup(0x2222)
	require.True(t, ok)
	require.Equal(t, "Canapé 🛋", text)

	_, ok = out.Lookup(0x9999)
	require.False(t, ok)
}

func TestTable_PutNotifies(t *testing.T) {
	tbl := newTable()
	n := 0
	tbl.Bind(func() { n++ })

	require.NoError(t, tbl.Put(1, "a"))
	require.NoError(t, tbl.Put(1, "a"))
	require.Equal(t, 1, n, "rewriting the same text is a no-op")

	require.NoError(t, tbl.Put(1, "b"))
	require.Equal(t, 2, n)
	require.Equal(t, 1, tbl.Entries().Len())
}

func TestTable_InvalidUTF8(t *testing.T) {
	tbl := newTable()
	n := 0
	tbl.Bind(func() { n++ })

	require.ErrorIs(t, tbl.Put(1, "a\xffb"), types.ErrInvalidValue)
	require.Zero(t, tbl.Entries().Len())
	require.Zero(t, n)

	// Entries appended directly still fail at encode time rather than
	// turning into U+FFFD.
	require.NoError(t, tbl.Entries().Append(Entry{Key: 2, Text: "x\xc0"}))
	_, err := codec.Marshal(tbl)
	require.ErrorIs(t, err, types.ErrInvalidValue)

	require.NoError(t, tbl.Entries().Set(0, Entry{Key: 2, Text: "ok"}))
	b, err := codec.Marshal(tbl)
	require.NoError(t, err)
	got := newTable()
	require.NoError(t, codec.Unmarshal(b, got, codec.Strict))
	text, ok := got.Lookup(2)
	require.True(t, ok)
	require.Equal(t, "ok", text)
}

func TestTable_StrictChecks(t *testing.T) {
	tbl := newTable()
	require.NoError(t, tbl.Put(7, "x"))
	b, err := codec.Marshal(tbl)
	require.NoError(t, err)

	bad := append([]byte(nil), b...)
	bad[4] = 3 // version
	require.ErrorIs(t, codec.Unmarshal(bad, newTable(), codec.Strict), types.ErrStrictValidation)
	require.NoError(t, codec.Unmarshal(bad, newTable(), codec.Lenient))

	bad = append([]byte(nil), b...)
	bad[11] = 1 // second reserved field
	require.ErrorIs(t, codec.Unmarshal(bad, newTable(), codec.Strict), types.ErrStrictValidation)

	// count claims more entries than bytes remain
	bad = append([]byte(nil), b...)
	bad[7] = 50
	require.ErrorIs(t, codec.Unmarshal(bad, newTable(), codec.Lenient), types.ErrMalformed)
}

func TestTable_InContainer(t *testing.T) {
	c := rcol.New(nil)
	tbl := newTable()
	require.NoError(t, tbl.Put(42, "hello"))
	_, err := c.AddChunk(tgi.New(Tag, 0, 1), tbl)
	require.NoError(t, err)

	data, err := c.Bytes()
	require.NoError(t, err)

	parsed, err := rcol.Parse(data, nil)
	require.NoError(t, err)
	e, err := parsed.Find(tgi.New(Tag, 0, 1))
	require.NoError(t, err)
	got, ok := e.Block().(*Table)
	require.True(t, ok)
	text, _ := got.Lookup(42)
	require.Equal(t, "hello", text)

	require.NoError(t, got.Put(42, "world"))
	require.True(t, parsed.Dirty())
}
