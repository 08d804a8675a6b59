package codec

import (
	"fmt"

	"github.com/arloliu/octet/cursor"
	"github.com/arloliu/octet/errs"
)

// NonZero is a fixed-width integer that is never zero.
//
// Encoding a zero value and decoding a zero pattern both fail with
// errs.ErrInvalidValue.
type NonZero[T Fixed] struct {
	V T
}

// NewNonZero wraps v, reporting false if v is zero.
func NewNonZero[T Fixed](v T) (NonZero[T], bool) {
	return NonZero[T]{V: v}, v != 0
}

func (n NonZero[T]) Encode(w cursor.Writer) error {
	if n.V == 0 {
		return errs.Invalid("zero in a non-zero %d-byte integer", sizeOf[T]())
	}

	return writeFixed(w, n.V)
}

func (n *NonZero[T]) Decode(r cursor.Reader) error {
	v, err := readFixed[T](r)
	if err != nil {
		return err
	}
	if v == 0 {
		return errs.Invalid("zero in a non-zero %d-byte integer", sizeOf[T]())
	}
	n.V = v

	return nil
}

func (NonZero[T]) FixedEncodeLen() int { return sizeOf[T]() }
func (NonZero[T]) EncodeLen() int      { return sizeOf[T]() }

// OptNonZero is an optional non-zero integer. Absent is stored as zero, so it costs
// no more than the integer itself.
type OptNonZero[T Fixed] struct {
	V     T
	Valid bool
}

// SomeNonZero returns a present OptNonZero holding v, or an absent one if v is zero.
func SomeNonZero[T Fixed](v T) OptNonZero[T] {
	return OptNonZero[T]{V: v, Valid: v != 0}
}

func (o OptNonZero[T]) Encode(w cursor.Writer) error {
	if !o.Valid {
		return writeFixed(w, T(0))
	}
	if o.V == 0 {
		return errs.Invalid("present optional non-zero holds zero")
	}

	return writeFixed(w, o.V)
}

func (o *OptNonZero[T]) Decode(r cursor.Reader) error {
	v, err := readFixed[T](r)
	if err != nil {
		return err
	}
	*o = SomeNonZero(v)

	return nil
}

func (OptNonZero[T]) FixedEncodeLen() int { return sizeOf[T]() }
func (OptNonZero[T]) EncodeLen() int      { return sizeOf[T]() }

func (o OptNonZero[T]) String() string {
	if !o.Valid {
		return "none"
	}

	return fmt.Sprint(o.V)
}
