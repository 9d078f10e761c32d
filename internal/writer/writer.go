// Package writer exposes sinks for emitted container bytes.
package writer

import "io"

// Sink receives a complete serialized container or chunk body.
type Sink interface {
	Emit(b []byte) error
}

// MemWriter captures emitted bytes in memory. Each Emit replaces the
// previous contents.
type MemWriter struct {
	Buf []byte
}

// Emit implements Sink.
func (w *MemWriter) Emit(b []byte) error {
	w.Buf = append(w.Buf[:0], b...)
	return nil
}

// StreamWriter forwards emitted bytes to an io.Writer such as stdout.
type StreamWriter struct {
	W io.Writer
}

// Emit implements Sink.
func (w StreamWriter) Emit(b []byte) error {
	_, err := w.W.Write(b)
	return err
}
