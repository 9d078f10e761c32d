package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemWriter(t *testing.T) {
	var w MemWriter
	require.NoError(t, w.Emit([]byte("first")))
	require.NoError(t, w.Emit([]byte("two")))
	require.Equal(t, []byte("two"), w.Buf)
}

func TestStreamWriter(t *testing.T) {
	var buf bytes.Buffer
	var s Sink = StreamWriter{W: &buf}
	require.NoError(t, s.Emit([]byte{1, 2}))
	require.NoError(t, s.Emit([]byte{3}))
	require.Equal(t, []byte{1, 2, 3}, buf.Bytes())
}

func TestFileWriter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.rcol")
	require.NoError(t, os.WriteFile(path, []byte("old contents"), 0o600))

	w := &FileWriter{Path: path}
	require.NoError(t, w.Emit([]byte("new")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("new"), got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file removed")
}

func TestFileWriter_MissingDir(t *testing.T) {
	w := &FileWriter{Path: filepath.Join(t.TempDir(), "nope", "out.rcol")}
	require.Error(t, w.Emit([]byte("x")))
}
