package codec

import (
	"fmt"

	"github.com/arloliu/octet/buffer"
	"github.com/arloliu/octet/cursor"
	"github.com/arloliu/octet/errs"
)

// Decoder is implemented by pointer types that can fill themselves from a cursor.
//
// A failed Decode leaves r after whatever bytes were consumed before the failure;
// callers that need to retry keep their own copy of the cursor.
type Decoder interface {
	Decode(r cursor.Reader) error
}

// Encoder is implemented by values that can write themselves to a cursor.
type Encoder interface {
	Encode(w cursor.Writer) error
}

// EncodeLener reports the exact number of bytes Encode would write for this value.
type EncodeLener interface {
	EncodeLen() int
}

// FixedLener is implemented by types whose every value encodes to the same length.
type FixedLener interface {
	FixedEncodeLen() int
}

// LenHinter is implemented by types whose encoded length is bounded. Every value's
// EncodeLen lies within [MinEncodeLen, MaxEncodeLen].
type LenHinter interface {
	MinEncodeLen() int
	MaxEncodeLen() int
}

// DecoderPtr constrains PT to be *T with a Decode method. It lets Read and Unmarshal
// return a T by value.
type DecoderPtr[T any] interface {
	*T
	Decoder
}

// Read decodes a T from r.
//
// Example:
//
//	v, err := codec.Read[varint.VarInt[uint32]](r)
func Read[T any, PT DecoderPtr[T]](r cursor.Reader) (T, error) {
	var v T
	err := PT(&v).Decode(r)

	return v, err
}

// Write encodes v to w.
func Write(w cursor.Writer, v Encoder) error {
	return v.Encode(w)
}

// LenBounds returns the encoded length bounds of v's type. ok is false when the type
// declares neither a fixed length nor a length hint.
func LenBounds(v any) (lo, hi int, ok bool) {
	switch t := v.(type) {
	case FixedLener:
		n := t.FixedEncodeLen()
		return n, n, true
	case LenHinter:
		return t.MinEncodeLen(), t.MaxEncodeLen(), true
	default:
		return 0, 0, false
	}
}

// Marshal encodes v into a freshly allocated Bytes.
//
// When v reports its EncodeLen the buffer is sized exactly; otherwise it grows as
// needed.
func Marshal(v Encoder) (buffer.Bytes, error) {
	var opts []buffer.BytesMutOption
	if l, ok := v.(EncodeLener); ok {
		opts = append(opts, buffer.WithCapacity(l.EncodeLen()))
	} else if _, hi, ok := LenBounds(v); ok {
		opts = append(opts, buffer.WithCapacity(hi))
	}

	m, err := buffer.NewBytesMut(opts...)
	if err != nil {
		return buffer.Bytes{}, err
	}
	if err := v.Encode(m); err != nil {
		return buffer.Bytes{}, err
	}

	return m.Freeze(), nil
}

// Unmarshal decodes a T that must occupy all of data.
//
// Decoded values that hold byte payloads (VarBytes) alias data.
func Unmarshal[T any, PT DecoderPtr[T]](data []byte) (T, error) {
	r := cursor.NewSliceReader(data)

	v, err := Read[T, PT](r)
	if err != nil {
		return v, err
	}
	if n := r.Remaining(); n > 0 {
		return v, fmt.Errorf("%w: %d bytes left", errs.ErrTrailingBytes, n)
	}

	return v, nil
}
