// Package mmfile maps package files read-only so large containers can be
// parsed without copying them onto the heap first.
package mmfile

import (
	"fmt"
	"os"
)

// File is a read-only view of a file's contents.
type File struct {
	data  []byte
	unmap func([]byte) error
}

// Open maps path. Empty files yield an empty, non-nil view.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // the mapping outlives the descriptor

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &File{data: []byte{}}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("mmfile: %s: %d bytes too large to map", path, size)
	}
	data, unmap, err := mapFile(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("mmfile: %s: %w", path, err)
	}
	return &File{data: data, unmap: unmap}, nil
}

// Bytes returns the mapped contents. The slice is invalid after Close.
func (m *File) Bytes() []byte { return m.data }

// Len returns the file size.
func (m *File) Len() int { return len(m.data) }

// Close releases the mapping. Closing twice is a no-op.
func (m *File) Close() error {
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	if m.unmap == nil {
		return nil
	}
	return m.unmap(data)
}

// ReadFile maps path, hands the contents to fn, then unmaps. fn must not
// retain the slice.
func ReadFile(path string, fn func([]byte) error) error {
	m, err := Open(path)
	if err != nil {
		return err
	}
	ferr := fn(m.Bytes())
	if cerr := m.Close(); cerr != nil && ferr == nil {
		return cerr
	}
	return ferr
}
