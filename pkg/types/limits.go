package types

import "math"

// Count-field widths used by the container and chunk formats. A list whose
// count is stored in one byte caps at MaxByteCount, and so on.
const (
	// MaxByteCount is the largest count a u8 field can hold.
	MaxByteCount = math.MaxUint8

	// MaxShortCount is the largest count a u16 field can hold.
	MaxShortCount = math.MaxUint16

	// MaxInt32Count is the largest count a signed 32-bit field can hold.
	// Container key and chunk counts are stored as i32.
	MaxInt32Count = math.MaxInt32
)
