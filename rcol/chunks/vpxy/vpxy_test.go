package vpxy

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rcolkit/pkg/codec"
	"github.com/joshuapare/rcolkit/pkg/tgi"
	"github.com/joshuapare/rcolkit/pkg/types"
	"github.com/joshuapare/rcolkit/rcol"
)

func sample(t *testing.T) *VPXY {
	t.Helper()
	v := newVPXY()
	require.NoError(t, v.Keys().Append(tgi.New(0x01661233, 0, 0x10)))
	require.NoError(t, v.Keys().Append(tgi.New(0x01D10F34, 0, 0x11)))
	require.NoError(t, v.Keys().Append(tgi.New(0xD382BF57, 0, 0x12)))

	group, err := NewListEntry(7, 0, 1)
	require.NoError(t, err)
	require.NoError(t, v.Entries().Append(group))
	require.NoError(t, v.Entries().Append(NewSingleEntry(2)))

	v.SetBounds(BoundingBox{Min: [3]float32{-1, 0, -1}, Max: [3]float32{1, 2, 1}})
	v.SetFootprint(2)
	return v
}

// bodySize is the number of bytes between the table reference and the key
// table for sample().
const bodySize = 1 + (1 + 1 + 1 + 8) + (1 + 4) + 1 + 24 + 4 + 1 + 4

func TestVPXY_RoundTrip(t *testing.T) {
	v := sample(t)
	b, err := codec.Marshal(v)
	require.NoError(t, err)

	out := newVPXY()
	require.NoError(t, codec.Unmarshal(b, out, codec.Strict))
	require.Equal(t, Version, out.Version())
	require.True(t, v.Entries().Equal(out.Entries()))
	require.True(t, v.Keys().Equal(out.Keys()))
	require.Equal(t, v.Bounds(), out.Bounds())

	fp, modular := out.Footprint()
	require.True(t, modular)
	require.Equal(t, int32(2), fp)

	k, err := out.Resolve(fp)
	require.NoError(t, err)
	require.Equal(t, tgi.New(0xD382BF57, 0, 0x12), k)

	again, err := codec.Marshal(out)
	require.NoError(t, err)
	require.Equal(t, b, again)
}

func TestVPXY_TableRefFields(t *testing.T) {
	b, err := codec.Marshal(sample(t))
	require.NoError(t, err)

	const offsetField = 8
	P := offsetField + 8 + bodySize
	L := 4 + 3*16
	require.Equal(t, uint32(P-(offsetField+4)), binary.LittleEndian.Uint32(b[offsetField:]))
	require.Equal(t, uint32(L), binary.LittleEndian.Uint32(b[offsetField+4:]))
	require.Len(t, b, P+L)
}

func TestVPXY_StrictVersusLenient(t *testing.T) {
	b, err := codec.Marshal(sample(t))
	require.NoError(t, err)
	copy(b, "VPXZ")

	strict := newVPXY()
	err = codec.Unmarshal(b, strict, codec.Strict)
	require.ErrorIs(t, err, types.ErrStrictValidation)

	lenient := newVPXY()
	require.NoError(t, codec.Unmarshal(b, lenient, codec.Lenient))
	require.True(t, sample(t).Keys().Equal(lenient.Keys()))
	require.True(t, sample(t).Entries().Equal(lenient.Entries()))
}

func TestVPXY_ReservedBytes(t *testing.T) {
	b, err := codec.Marshal(sample(t))
	require.NoError(t, err)
	reservedAt := 16 + bodySize - 4 - 1 - 4
	b[reservedAt] = 0xAA

	require.ErrorIs(t, codec.Unmarshal(b, newVPXY(), codec.Strict), types.ErrStrictValidation)
	require.NoError(t, codec.Unmarshal(b, newVPXY(), codec.Lenient))
}

func TestVPXY_StructuralErrorsInBothModes(t *testing.T) {
	b, err := codec.Marshal(sample(t))
	require.NoError(t, err)

	// table offset pointing past the end is structural
	bad := append([]byte(nil), b...)
	binary.LittleEndian.PutUint32(bad[8:], 0xFFFF)
	for _, mode := range []codec.Mode{codec.Strict, codec.Lenient} {
		require.ErrorIs(t, codec.Unmarshal(bad, newVPXY(), mode), types.ErrMalformed, mode.String())
	}

	// unknown entry type
	bad = append([]byte(nil), b...)
	bad[17] = 0x05
	require.ErrorIs(t, codec.Unmarshal(bad, newVPXY(), codec.Lenient), types.ErrMalformed)

	// truncated key table
	require.ErrorIs(t, codec.Unmarshal(b[:len(b)-3], newVPXY(), codec.Lenient), types.ErrMalformed)
}

func TestVPXY_EntryCapacity(t *testing.T) {
	v := newVPXY()
	for i := range types.MaxByteCount {
		require.NoError(t, v.Entries().Append(NewSingleEntry(int32(i))))
	}
	require.ErrorIs(t, v.Entries().Append(NewSingleEntry(0)), types.ErrCapacityExceeded)

	idx := make([]int32, 256)
	_, err := NewListEntry(0, idx...)
	require.ErrorIs(t, err, types.ErrCapacityExceeded)
}

func TestVPXY_ZeroAndNilEntries(t *testing.T) {
	v := newVPXY()
	zero := &Entry{}
	require.NoError(t, v.Entries().Append(zero))

	b, err := codec.Marshal(v)
	require.NoError(t, err, "a zero entry encodes as an empty index list")
	got := newVPXY()
	require.NoError(t, codec.Unmarshal(b, got, codec.Strict))
	e, err := got.Entries().Get(0)
	require.NoError(t, err)
	require.Equal(t, EntryList, e.Kind())
	require.Zero(t, e.Indexes().Len())
	require.True(t, e.Equal(zero))

	n := 0
	v.Bind(func() { n++ })
	require.NoError(t, zero.Indexes().Append(2))
	require.Equal(t, 1, n, "a lazily created index list reports to the chunk")

	require.NoError(t, v.Entries().Append(nil))
	_, err = codec.Marshal(v)
	require.ErrorIs(t, err, types.ErrInvalidValue)
}

func TestVPXY_NestedChangesReachContainer(t *testing.T) {
	c := rcol.New(nil)
	v := sample(t)
	e, err := c.AddChunk(tgi.New(Tag, 0, 1), v)
	require.NoError(t, err)
	_, err = c.Unparse()
	require.NoError(t, err)
	require.False(t, c.Dirty())

	entry, err := v.Entries().Get(0)
	require.NoError(t, err)
	require.NoError(t, entry.Indexes().Append(2))
	require.True(t, c.Dirty(), "a nested index list mutation must dirty the container")

	_, err = c.Unparse()
	require.NoError(t, err)
	v.ClearFootprint()
	require.True(t, c.Dirty())

	_, err = c.Unparse()
	require.NoError(t, err)
	clone := e.CloneWithNotify(nil)
	clone.Block().(*VPXY).SetBounds(BoundingBox{})
	require.False(t, c.Dirty(), "clones are detached from the original owner")
}

func TestVPXY_Registered(t *testing.T) {
	require.True(t, rcol.DefaultRegistry().Has(Tag))

	reg := rcol.NewRegistry()
	Register(reg)
	f, err := reg.Resolve(Tag)
	require.NoError(t, err)
	require.IsType(t, &VPXY{}, f())
}
