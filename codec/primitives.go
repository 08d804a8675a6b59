package codec

import (
	"math"

	"github.com/arloliu/octet/cursor"
	"github.com/arloliu/octet/errs"
)

// Fixed-width primitives. Multi-byte values are big-endian.
type (
	U8  uint8
	U16 uint16
	U32 uint32
	U64 uint64
	I8  int8
	I16 int16
	I32 int32
	I64 int64
	F32 float32
	F64 float64
)

func (v U8) Encode(w cursor.Writer) error  { return writeFixed(w, v) }
func (v U16) Encode(w cursor.Writer) error { return writeFixed(w, v) }
func (v U32) Encode(w cursor.Writer) error { return writeFixed(w, v) }
func (v U64) Encode(w cursor.Writer) error { return writeFixed(w, v) }
func (v I8) Encode(w cursor.Writer) error  { return writeFixed(w, v) }
func (v I16) Encode(w cursor.Writer) error { return writeFixed(w, v) }
func (v I32) Encode(w cursor.Writer) error { return writeFixed(w, v) }
func (v I64) Encode(w cursor.Writer) error { return writeFixed(w, v) }

func (v F32) Encode(w cursor.Writer) error {
	return writeFixed(w, math.Float32bits(float32(v)))
}

func (v F64) Encode(w cursor.Writer) error {
	return writeFixed(w, math.Float64bits(float64(v)))
}

func (v *U8) Decode(r cursor.Reader) error  { return decodeFixed(r, v) }
func (v *U16) Decode(r cursor.Reader) error { return decodeFixed(r, v) }
func (v *U32) Decode(r cursor.Reader) error { return decodeFixed(r, v) }
func (v *U64) Decode(r cursor.Reader) error { return decodeFixed(r, v) }
func (v *I8) Decode(r cursor.Reader) error  { return decodeFixed(r, v) }
func (v *I16) Decode(r cursor.Reader) error { return decodeFixed(r, v) }
func (v *I32) Decode(r cursor.Reader) error { return decodeFixed(r, v) }
func (v *I64) Decode(r cursor.Reader) error { return decodeFixed(r, v) }

func (v *F32) Decode(r cursor.Reader) error {
	bits, err := readFixed[uint32](r)
	if err != nil {
		return err
	}
	*v = F32(math.Float32frombits(bits))

	return nil
}

func (v *F64) Decode(r cursor.Reader) error {
	bits, err := readFixed[uint64](r)
	if err != nil {
		return err
	}
	*v = F64(math.Float64frombits(bits))

	return nil
}

func (U8) FixedEncodeLen() int  { return 1 }
func (U16) FixedEncodeLen() int { return 2 }
func (U32) FixedEncodeLen() int { return 4 }
func (U64) FixedEncodeLen() int { return 8 }
func (I8) FixedEncodeLen() int  { return 1 }
func (I16) FixedEncodeLen() int { return 2 }
func (I32) FixedEncodeLen() int { return 4 }
func (I64) FixedEncodeLen() int { return 8 }
func (F32) FixedEncodeLen() int { return 4 }
func (F64) FixedEncodeLen() int { return 8 }

func (v U8) EncodeLen() int  { return v.FixedEncodeLen() }
func (v U16) EncodeLen() int { return v.FixedEncodeLen() }
func (v U32) EncodeLen() int { return v.FixedEncodeLen() }
func (v U64) EncodeLen() int { return v.FixedEncodeLen() }
func (v I8) EncodeLen() int  { return v.FixedEncodeLen() }
func (v I16) EncodeLen() int { return v.FixedEncodeLen() }
func (v I32) EncodeLen() int { return v.FixedEncodeLen() }
func (v I64) EncodeLen() int { return v.FixedEncodeLen() }
func (v F32) EncodeLen() int { return v.FixedEncodeLen() }
func (v F64) EncodeLen() int { return v.FixedEncodeLen() }

func decodeFixed[T Fixed](r cursor.Reader, dst *T) error {
	v, err := readFixed[T](r)
	if err != nil {
		return err
	}
	*dst = v

	return nil
}

// Bool encodes as a single 0 or 1 byte. Any other byte fails to decode with
// errs.ErrInvalidValue.
type Bool bool

func (v Bool) Encode(w cursor.Writer) error {
	var b byte
	if v {
		b = 1
	}

	return cursor.WriteByte(w, b)
}

func (v *Bool) Decode(r cursor.Reader) error {
	b, err := cursor.ReadByte(r)
	if err != nil {
		return err
	}

	switch b {
	case 0:
		*v = false
	case 1:
		*v = true
	default:
		return errs.Invalid("bool byte %#02x", b)
	}

	return nil
}

func (Bool) FixedEncodeLen() int { return 1 }
func (Bool) EncodeLen() int      { return 1 }

// Unit carries no data and encodes to zero bytes.
type Unit struct{}

func (Unit) Encode(cursor.Writer) error  { return nil }
func (*Unit) Decode(cursor.Reader) error { return nil }
func (Unit) FixedEncodeLen() int         { return 0 }
func (Unit) EncodeLen() int              { return 0 }
