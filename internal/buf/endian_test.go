package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := U16LE(data); got != 0x2301 {
		t.Fatalf("U16LE = 0x%x, want 0x2301", got)
	}
	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}
	if got := U64LE(data); got != 0xefcdab8967452301 {
		t.Fatalf("U64LE = 0x%x, want 0xefcdab8967452301", got)
	}
	if got := I32LE([]byte{0xff, 0xff, 0xff, 0xff}); got != -1 {
		t.Fatalf("I32LE = %d, want -1", got)
	}
	if got := F32LE([]byte{0x00, 0x00, 0x80, 0x3f}); got != 1.0 {
		t.Fatalf("F32LE = %v, want 1", got)
	}

	short := []byte{0xAA}
	if U16LE(short) != 0 || U32LE(short) != 0 || U64LE(short) != 0 || I32LE(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
}

func TestAppendAndPut(t *testing.T) {
	b := AppendU16LE(nil, 0xBEEF)
	b = AppendU32LE(b, 0x01020304)
	b = AppendU64LE(b, 0x1122334455667788)
	if len(b) != 14 {
		t.Fatalf("len = %d, want 14", len(b))
	}
	if U16LE(b) != 0xBEEF || U32LE(b[2:]) != 0x01020304 || U64LE(b[6:]) != 0x1122334455667788 {
		t.Fatalf("append round trip mismatch: % x", b)
	}
	PutU32LE(b, 2, 0xCAFEBABE)
	if U32LE(b[2:]) != 0xCAFEBABE {
		t.Fatalf("PutU32LE did not overwrite in place")
	}
}
