package codec

import (
	"unsafe"

	"github.com/arloliu/octet/cursor"
	"github.com/arloliu/octet/endian"
)

// ReadUint16 reads two bytes from r in the given byte order.
func ReadUint16(r cursor.Reader, order endian.Engine) (uint16, error) {
	var scratch [2]byte
	if err := cursor.ReadExact(r, scratch[:]); err != nil {
		return 0, err
	}

	return order.Uint16(scratch[:]), nil
}

// ReadUint32 reads four bytes from r in the given byte order.
func ReadUint32(r cursor.Reader, order endian.Engine) (uint32, error) {
	var scratch [4]byte
	if err := cursor.ReadExact(r, scratch[:]); err != nil {
		return 0, err
	}

	return order.Uint32(scratch[:]), nil
}

// ReadUint64 reads eight bytes from r in the given byte order.
func ReadUint64(r cursor.Reader, order endian.Engine) (uint64, error) {
	var scratch [8]byte
	if err := cursor.ReadExact(r, scratch[:]); err != nil {
		return 0, err
	}

	return order.Uint64(scratch[:]), nil
}

// WriteUint16 writes v to w in the given byte order.
func WriteUint16(w cursor.Writer, order endian.Engine, v uint16) error {
	var scratch [2]byte
	return w.WriteFrom(order.AppendUint16(scratch[:0], v))
}

// WriteUint32 writes v to w in the given byte order.
func WriteUint32(w cursor.Writer, order endian.Engine, v uint32) error {
	var scratch [4]byte
	return w.WriteFrom(order.AppendUint32(scratch[:0], v))
}

// WriteUint64 writes v to w in the given byte order.
func WriteUint64(w cursor.Writer, order endian.Engine, v uint64) error {
	var scratch [8]byte
	return w.WriteFrom(order.AppendUint64(scratch[:0], v))
}

// Fixed is the set of fixed-width integer types.
type Fixed interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}

func sizeOf[T Fixed]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// writeFixed writes v big-endian in its natural width.
func writeFixed[T Fixed](w cursor.Writer, v T) error {
	order := endian.Default()
	switch sizeOf[T]() {
	case 1:
		return cursor.WriteByte(w, byte(v))
	case 2:
		return WriteUint16(w, order, uint16(v))
	case 4:
		return WriteUint32(w, order, uint32(v))
	default:
		return WriteUint64(w, order, uint64(v))
	}
}

// readFixed reads a big-endian T.
func readFixed[T Fixed](r cursor.Reader) (T, error) {
	order := endian.Default()
	switch sizeOf[T]() {
	case 1:
		b, err := cursor.ReadByte(r)
		return T(b), err
	case 2:
		v, err := ReadUint16(r, order)
		return T(v), err
	case 4:
		v, err := ReadUint32(r, order)
		return T(v), err
	default:
		v, err := ReadUint64(r, order)
		return T(v), err
	}
}
