package types

import (
	"fmt"
	"strconv"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindMalformed ErrKind = iota // structural violation while parsing (bad size, truncation)
	ErrKindCapacity                 // bounded list would exceed its maximum
	ErrKindNoDefault                // chunk tag unknown and no wildcard codec registered
	ErrKindStrict                   // redundant field disagreed under strict validation
	ErrKindRange                    // index outside a list
	ErrKindNotFound                 // missing key or chunk
	ErrKindInvalid                  // value cannot be encoded faithfully
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindMalformed:
		return "malformed"
	case ErrKindCapacity:
		return "capacity"
	case ErrKindNoDefault:
		return "no-default"
	case ErrKindStrict:
		return "strict"
	case ErrKindRange:
		return "range"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindInvalid:
		return "invalid"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// NoOffset marks an Error that is not tied to a stream position.
const NoOffset int64 = -1

// Error is a typed error with an optional stream offset and underlying cause.
type Error struct {
	Kind   ErrKind
	Offset int64 // absolute stream offset, or NoOffset
	Msg    string
	Err    error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s at offset 0x%x", msg, e.Offset)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a sentinel of the same kind, so
// errors.Is(err, types.ErrMalformed) matches any malformed-data error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Kind == e.Kind && t.sentinel()
}

func (e *Error) sentinel() bool {
	return e == ErrMalformed || e == ErrCapacityExceeded || e == ErrNoDefaultRegistered ||
		e == ErrStrictValidation || e == ErrOutOfRange || e == ErrNotFound || e == ErrInvalidValue
}

// Sentinels commonly returned by implementations.
var (
	// ErrMalformed indicates a structural violation while parsing.
	ErrMalformed = &Error{Kind: ErrKindMalformed, Offset: NoOffset, Msg: "malformed data"}
	// ErrCapacityExceeded indicates a bounded list is already at its maximum.
	ErrCapacityExceeded = &Error{Kind: ErrKindCapacity, Offset: NoOffset, Msg: "capacity exceeded"}
	// ErrNoDefaultRegistered indicates a chunk tag has no codec and no wildcard exists.
	ErrNoDefaultRegistered = &Error{Kind: ErrKindNoDefault, Offset: NoOffset, Msg: "no default chunk codec registered"}
	// ErrStrictValidation indicates a redundant field failed a strict-mode check.
	ErrStrictValidation = &Error{Kind: ErrKindStrict, Offset: NoOffset, Msg: "strict validation failed"}
	// ErrOutOfRange indicates a list index outside [0, Len).
	ErrOutOfRange = &Error{Kind: ErrKindRange, Offset: NoOffset, Msg: "index out of range"}
	// ErrNotFound indicates a missing key or chunk.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Offset: NoOffset, Msg: "not found"}
	// ErrInvalidValue indicates an in-memory value the wire format cannot hold.
	ErrInvalidValue = &Error{Kind: ErrKindInvalid, Offset: NoOffset, Msg: "invalid value"}
)

// Malformed builds an ErrKindMalformed error at the given absolute offset.
func Malformed(offset int64, format string, args ...any) *Error {
	return &Error{Kind: ErrKindMalformed, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// Strict builds an ErrKindStrict error at the given absolute offset.
func Strict(offset int64, format string, args ...any) *Error {
	return &Error{Kind: ErrKindStrict, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// Capacity builds an ErrKindCapacity error describing the rejected size.
func Capacity(max, want int) *Error {
	return &Error{
		Kind:   ErrKindCapacity,
		Offset: NoOffset,
		Msg:    fmt.Sprintf("capacity exceeded: %d items, max %d", want, max),
	}
}

// OutOfRange builds an ErrKindRange error for index i in a list of length n.
func OutOfRange(i, n int) *Error {
	return &Error{
		Kind:   ErrKindRange,
		Offset: NoOffset,
		Msg:    fmt.Sprintf("index %d out of range [0,%d)", i, n),
	}
}

// NotFound builds an ErrKindNotFound error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: ErrKindNotFound, Offset: NoOffset, Msg: fmt.Sprintf(format, args...)}
}

// Invalid builds an ErrKindInvalid error for a value rejected before encoding.
func Invalid(format string, args ...any) *Error {
	return &Error{Kind: ErrKindInvalid, Offset: NoOffset, Msg: fmt.Sprintf(format, args...)}
}
