package varint

import (
	"strconv"
	"unsafe"

	"github.com/arloliu/octet/cursor"
)

// Integer is the set of integer types VarInt can wrap.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// VarInt encodes an integer in as few bytes as its magnitude needs.
//
// Unsigned types use LEB128 directly; signed types are zigzag mapped first. The
// encoding is at most MaxLen(bits of T) bytes long, and a decode that does not
// terminate within that many bytes fails with errs.ErrVarIntTooLarge.
//
// VarInt implements the octet codec contract:
//
//	v := varint.VarInt[uint32]{V: 300}
//	err := v.Encode(w) // writes 0xAC 0x02
//
//	var got varint.VarInt[uint32]
//	err = got.Decode(r)
type VarInt[T Integer] struct {
	V T
}

// Of wraps v.
func Of[T Integer](v T) VarInt[T] {
	return VarInt[T]{V: v}
}

// Encode writes the encoding of v to w in a single write.
func (v VarInt[T]) Encode(w cursor.Writer) error {
	var scratch [MaxLen64]byte
	return w.WriteFrom(v.appendTo(scratch[:0]))
}

// Decode reads an encoded value from r into v.
func (v *VarInt[T]) Decode(r cursor.Reader) error {
	u, err := ReadUvarint(r, bitWidth[T]())
	if err != nil {
		return err
	}

	if isSigned[T]() {
		v.V = T(Unzigzag(u))
	} else {
		v.V = T(u)
	}

	return nil
}

// EncodeLen returns the exact number of bytes Encode writes.
func (v VarInt[T]) EncodeLen() int {
	return UvarintLen(v.wire())
}

// MinEncodeLen returns the shortest possible encoding, one byte.
func (VarInt[T]) MinEncodeLen() int {
	return 1
}

// MaxEncodeLen returns the longest possible encoding for T.
func (VarInt[T]) MaxEncodeLen() int {
	return MaxLen(bitWidth[T]())
}

// Append appends the encoding of v to dst.
func (v VarInt[T]) Append(dst []byte) []byte {
	return v.appendTo(dst)
}

func (v VarInt[T]) String() string {
	if isSigned[T]() {
		return strconv.FormatInt(int64(v.V), 10)
	}

	return strconv.FormatUint(uint64(v.V), 10)
}

func (v VarInt[T]) appendTo(dst []byte) []byte {
	return AppendUvarint(dst, v.wire())
}

// wire returns the unsigned value that goes on the wire.
func (v VarInt[T]) wire() uint64 {
	if isSigned[T]() {
		return Zigzag(int64(v.V))
	}

	return uint64(v.V)
}

func bitWidth[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

func isSigned[T Integer]() bool {
	var zero T
	return zero-1 < 0
}
