// Package errs defines the errors returned by octet cursors and codecs.
//
// Every fallible operation returns either nil, an error wrapping ErrInsufficientBuffer,
// or a domain error describing why the bytes could not be turned into a value.
// The split lets a caller buffer more input and retry on the former while treating the
// latter as permanently corrupt input:
//
//	v, err := codec.Read[varint.VarInt[uint32]](r)
//	switch errs.KindOf(err) {
//	case errs.KindNone:
//	    // use v
//	case errs.KindInsufficientBuffer:
//	    // wait for more bytes, then retry from a saved position
//	case errs.KindDomain:
//	    // reject the input
//	}
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientBuffer is returned when a cursor needs more bytes, or more
	// capacity, than it has left.
	ErrInsufficientBuffer = errors.New("insufficient buffer")

	// ErrInvalidValue is returned when a byte pattern is not a valid encoding of the
	// target type, e.g. a bool that is neither 0 nor 1 or a zero non-zero integer.
	ErrInvalidValue = errors.New("invalid encoded value")

	// ErrVarIntTooLarge is returned when a varint keeps its continuation bit set for
	// more groups than the target integer width can hold.
	ErrVarIntTooLarge = errors.New("varint too large")

	// ErrTrailingBytes is returned by whole-buffer decodes that leave bytes unread.
	ErrTrailingBytes = errors.New("trailing bytes after decoded value")
)

// Kind classifies an error returned by a cursor or codec operation.
type Kind uint8

const (
	KindNone               Kind = iota // KindNone means the operation succeeded.
	KindInsufficientBuffer             // KindInsufficientBuffer means more bytes or capacity are needed.
	KindDomain                         // KindDomain means the input is invalid for the target type.
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindInsufficientBuffer:
		return "InsufficientBuffer"
	case KindDomain:
		return "Domain"
	default:
		return "Unknown"
	}
}

// KindOf reports which bucket err belongs to.
//
// Any non-nil error that does not wrap ErrInsufficientBuffer is a domain error,
// including errors defined by third-party codec implementations.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInsufficientBuffer):
		return KindInsufficientBuffer
	default:
		return KindDomain
	}
}

// IsInsufficientBuffer reports whether err wraps ErrInsufficientBuffer.
func IsInsufficientBuffer(err error) bool {
	return errors.Is(err, ErrInsufficientBuffer)
}

// Insufficient returns ErrInsufficientBuffer annotated with how many bytes were
// needed and how many were available.
func Insufficient(need, have int) error {
	return fmt.Errorf("%w: need %d bytes, have %d", ErrInsufficientBuffer, need, have)
}

// Invalid returns ErrInvalidValue annotated with a description of the offending value.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))
}
