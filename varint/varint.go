package varint

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/octet/cursor"
	"github.com/arloliu/octet/errs"
)

// MaxLen64 is the longest encoding of a 64-bit integer.
const MaxLen64 = 10

// MaxLen returns the longest encoding of an integer of the given bit width,
// ceil(bitWidth/7).
func MaxLen(bitWidth int) int {
	return (bitWidth + 6) / 7
}

// AppendUvarint appends the LEB128 encoding of v to dst.
//
// Example encodings:
//   - 0 → [0x00]
//   - 127 → [0x7f]
//   - 128 → [0x80, 0x01]
//   - 300 → [0xac, 0x02]
func AppendUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// AppendVarint appends the zigzag LEB128 encoding of v to dst.
func AppendVarint(dst []byte, v int64) []byte {
	return AppendUvarint(dst, Zigzag(v))
}

// UvarintLen returns the encoded length of v without encoding it.
func UvarintLen(v uint64) int {
	// one group per started 7 bits; zero still takes one byte
	return max(1, (bits.Len64(v)+6)/7)
}

// VarintLen returns the zigzag encoded length of v.
func VarintLen(v int64) int {
	return UvarintLen(Zigzag(v))
}

// Zigzag maps signed integers onto unsigned ones so that small magnitudes stay small:
// 0 → 0, -1 → 1, 1 → 2, -2 → 3.
//
// For any v representable in a narrower signed width, the result equals the zigzag
// of v computed in that width.
func Zigzag(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// Unzigzag inverts Zigzag.
func Unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// WriteUvarint writes the encoding of v to w in a single write, so w is unchanged
// if it lacks room for all of it.
func WriteUvarint(w cursor.Writer, v uint64) error {
	var scratch [MaxLen64]byte
	return w.WriteFrom(AppendUvarint(scratch[:0], v))
}

// WriteVarint writes the zigzag encoding of v to w in a single write.
func WriteVarint(w cursor.Writer, v int64) error {
	return WriteUvarint(w, Zigzag(v))
}

// ReadUvarint decodes an unsigned integer of the given bit width from r.
//
// Bytes are consumed one at a time until one with a clear high bit. If MaxLen(bitWidth)
// bytes all have the high bit set, the read fails with errs.ErrVarIntTooLarge having
// consumed exactly those bytes. Bits of the final group beyond bitWidth are dropped.
//
// It panics if bitWidth is not between 1 and 64.
func ReadUvarint(r cursor.Reader, bitWidth int) (uint64, error) {
	if bitWidth < 1 || bitWidth > 64 {
		panic(fmt.Sprintf("varint: bit width %d out of range", bitWidth))
	}

	var v uint64
	limit := MaxLen(bitWidth)
	for i := range limit {
		b, err := cursor.ReadByte(r)
		if err != nil {
			return 0, err
		}

		v |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return truncate(v, bitWidth), nil
		}
	}

	return 0, fmt.Errorf("%w: no terminating byte within %d bytes for a %d-bit integer",
		errs.ErrVarIntTooLarge, limit, bitWidth)
}

// ReadVarint decodes a zigzag encoded signed integer of the given bit width from r.
// The result always fits in bitWidth bits.
func ReadVarint(r cursor.Reader, bitWidth int) (int64, error) {
	u, err := ReadUvarint(r, bitWidth)
	if err != nil {
		return 0, err
	}

	return Unzigzag(u), nil
}

func truncate(v uint64, bitWidth int) uint64 {
	if bitWidth >= 64 {
		return v
	}

	return v & (1<<bitWidth - 1)
}
