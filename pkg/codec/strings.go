package codec

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/rcolkit/pkg/types"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// UTF16 reads chars UTF-16LE code units and decodes them to a Go string.
func (r *Reader) UTF16(chars int) string {
	n := r.Count(chars, 2, "utf-16 string")
	raw := r.take(n*2, "utf-16 string")
	if raw == nil {
		return ""
	}
	s, err := utf16le.NewDecoder().Bytes(raw)
	if err != nil {
		r.Failf("utf-16 string: %v", err)
		return ""
	}
	return string(s)
}

// UTF16 encodes s as UTF-16LE without a terminator and returns the number of
// code units written.
func (w *Writer) UTF16(s string) (int, error) {
	b, err := EncodeUTF16(s)
	if err != nil {
		return 0, err
	}
	w.put(b)
	return len(b) / 2, nil
}

// EncodeUTF16 returns s as UTF-16LE bytes. Strings that are not valid UTF-8
// fail with types.ErrInvalidValue instead of being replaced with U+FFFD.
func EncodeUTF16(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, types.Invalid("string %q is not valid UTF-8", s)
	}
	return utf16le.NewEncoder().Bytes([]byte(s))
}

// UTF16Len returns the number of UTF-16 code units needed to encode s.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
			continue
		}
		n++
	}
	return n
}
