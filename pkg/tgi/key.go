package tgi

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Key addresses a resource or chunk.
type Key struct {
	Type     uint32
	Group    uint32
	Instance uint64
}

// New returns the key (t, g, i).
func New(t, g uint32, i uint64) Key {
	return Key{Type: t, Group: g, Instance: i}
}

// Compare orders keys by type, then group, then instance. It returns -1, 0
// or +1.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.Type, o.Type); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Group, o.Group); c != 0 {
		return c
	}
	return cmp.Compare(k.Instance, o.Instance)
}

// Less reports whether k sorts before o.
func (k Key) Less(o Key) bool { return k.Compare(o) < 0 }

// Equal reports structural equality.
func (k Key) Equal(o Key) bool { return k == o }

// IsZero reports whether every field is zero.
func (k Key) IsZero() bool { return k == Key{} }

// String renders the fixed external form.
func (k Key) String() string {
	return fmt.Sprintf("0x%08X-0x%08X-0x%016X", k.Type, k.Group, k.Instance)
}

// MarshalText implements encoding.TextMarshaler with the external form.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Parse reads the external form. The 0x prefixes are optional and hex digits
// are case-insensitive.
func Parse(s string) (Key, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Key{}, fmt.Errorf("tgi: %q: want TYPE-GROUP-INSTANCE", s)
	}
	t, err := parseHex(parts[0], 32)
	if err != nil {
		return Key{}, fmt.Errorf("tgi: %q: type: %w", s, err)
	}
	g, err := parseHex(parts[1], 32)
	if err != nil {
		return Key{}, fmt.Errorf("tgi: %q: group: %w", s, err)
	}
	i, err := parseHex(parts[2], 64)
	if err != nil {
		return Key{}, fmt.Errorf("tgi: %q: instance: %w", s, err)
	}
	return Key{Type: uint32(t), Group: uint32(g), Instance: i}, nil
}

func parseHex(s string, bits int) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return strconv.ParseUint(s, 16, bits)
}

// Sort orders keys in place.
func Sort(keys []Key) {
	slices.SortFunc(keys, Key.Compare)
}
