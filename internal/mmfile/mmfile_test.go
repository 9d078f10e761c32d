package mmfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.rcol")
	want := []byte{0x03, 0x00, 0x00, 0x00, 0x42}
	require.NoError(t, os.WriteFile(path, want, 0o644))

	m, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, want, m.Bytes())
	require.Equal(t, len(want), m.Len())

	require.NoError(t, m.Close())
	require.Nil(t, m.Bytes())
	require.NoError(t, m.Close(), "double close")
}

func TestOpen_ZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.rcol")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	m, err := Open(path)
	require.NoError(t, err)
	require.NotNil(t, m.Bytes())
	require.Zero(t, m.Len())
	require.NoError(t, m.Close())
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.rcol")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	var got []byte
	require.NoError(t, ReadFile(path, func(b []byte) error {
		got = append([]byte(nil), b...)
		return nil
	}))
	require.Equal(t, []byte("abc"), got)

	boom := errors.New("boom")
	require.ErrorIs(t, ReadFile(path, func([]byte) error { return boom }), boom)
}
