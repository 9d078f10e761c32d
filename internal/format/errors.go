package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrNegativeCount indicates a signed count field held a negative value.
	ErrNegativeCount = errors.New("format: negative count")
	// ErrIndexOutOfBounds indicates a chunk index entry points outside the container.
	ErrIndexOutOfBounds = errors.New("format: chunk index outside container")
	// ErrTooLarge indicates a value cannot be represented in its on-disk field.
	ErrTooLarge = errors.New("format: value too large for field")
)
