// Package octet is a toolkit for reading and writing binary data through cursors.
//
// Codecs are written once against the cursor contracts and then work over a plain
// slice, a reference-counted buffer, a chain of fragments, or an io stream.
//
// # Core Features
//
//   - Read and write cursors with an exact-read fast path for contiguous input
//   - Encode/decode contracts with exact, fixed and bounded length reporting
//   - LEB128 variable-length integers with zigzag for signed types
//   - Reference-counted byte buffers with O(1) slicing and a double-ended chunk iterator
//   - Compressed payload blocks (Zstd, S2, LZ4)
//
// # Basic Usage
//
// Encoding and decoding a single value:
//
//	import "github.com/arloliu/octet"
//
//	data, _ := octet.Encode(varint.Of[uint32](300)) // [0xAC 0x02]
//	v, _ := octet.Decode[varint.VarInt[uint32]](data)
//
// Writing a composite value by hand:
//
//	m, _ := buffer.NewBytesMut()
//	_ = codec.U16(7).Encode(m)
//	_ = varint.Of[int64](-1).Encode(m)
//	b := m.Freeze()
//
// Splitting a buffer into fixed-size chunks:
//
//	for chunk := range octet.Chunks(data, 4096).All() {
//	    process(chunk.Bytes())
//	}
//
// # Package Structure
//
// This package provides top-level shortcuts for the common cases. The cursor,
// codec, varint, buffer and compress packages hold the full API.
package octet

import (
	"github.com/arloliu/octet/buffer"
	"github.com/arloliu/octet/codec"
	"github.com/arloliu/octet/compress"
	"github.com/arloliu/octet/cursor"
	"github.com/arloliu/octet/varint"
)

// Encode encodes v into a new byte slice.
//
// Parameters:
//   - v: value to encode
//
// Returns:
//   - []byte: encoded bytes
//   - error: any error returned by v's Encode
func Encode(v codec.Encoder) ([]byte, error) {
	b, err := codec.Marshal(v)
	if err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// Decode decodes a T that must occupy all of data.
//
// Example:
//
//	v, err := octet.Decode[codec.U32](data)
func Decode[T any, PT codec.DecoderPtr[T]](data []byte) (T, error) {
	return codec.Unmarshal[T, PT](data)
}

// EncodeUvarint returns the varint encoding of v.
func EncodeUvarint(v uint64) []byte {
	return varint.AppendUvarint(make([]byte, 0, varint.UvarintLen(v)), v)
}

// DecodeUvarint decodes a 64-bit varint from the start of data and reports how many
// bytes it used.
func DecodeUvarint(data []byte) (uint64, int, error) {
	r := cursor.NewSliceReader(data)
	v, err := varint.ReadUvarint(r, 64)

	return v, len(data) - r.Remaining(), err
}

// Chunks returns an iterator over chunkLen-sized chunks of data. data must not be
// modified while the iterator or its chunks are in use.
//
// It panics if chunkLen is less than 1.
func Chunks(data []byte, chunkLen int) *buffer.ByteChunks {
	return buffer.New(data).Chunks(chunkLen)
}

// EncodeCompressed encodes v and wraps the result in a compressed Block of type t.
//
// Parameters:
//   - t: compression algorithm
//   - v: value to encode
//
// Returns:
//   - []byte: encoded block
//   - error: encoding or compression error
func EncodeCompressed(t compress.Type, v codec.Encoder) ([]byte, error) {
	raw, err := codec.Marshal(v)
	if err != nil {
		return nil, err
	}

	blk, err := compress.NewBlock(t, raw)
	if err != nil {
		return nil, err
	}

	return Encode(blk)
}

// DecodeCompressed reverses EncodeCompressed.
func DecodeCompressed[T any, PT codec.DecoderPtr[T]](data []byte) (T, error) {
	blk, err := codec.Unmarshal[compress.Block](data)
	if err != nil {
		var zero T
		return zero, err
	}

	return codec.Unmarshal[T, PT](blk.Raw.Bytes())
}
