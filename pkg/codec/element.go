package codec

// Element is implemented by every structured value in the format.
type Element interface {
	Parse(r *Reader) error
	Unparse(w *Writer) error
}

// Marshal serializes e into a fresh buffer.
func Marshal(e Element) ([]byte, error) {
	w := NewWriter(0)
	if err := e.Unparse(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal parses data into e. In Strict mode bytes left after e.Parse are
// rejected.
func Unmarshal(data []byte, e Element, mode Mode) error {
	r := NewReader(data, mode)
	if err := e.Parse(r); err != nil {
		return err
	}
	return r.Finish()
}
