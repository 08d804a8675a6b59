package cursor

import (
	"github.com/arloliu/octet/buffer"
	"github.com/arloliu/octet/errs"
)

// Reader is a cursor over a sequence of bytes that may be split across several
// non-contiguous chunks.
//
// Remaining is the total number of unread bytes and is exact. Chunk returns some
// contiguous prefix of them; it may be shorter than Remaining for fragmented
// sources, and may be empty only when Remaining is zero. Advance consumes bytes from
// the front. ReadOwned consumes n bytes and returns them as an independently owned
// Bytes, zero-copy where the source allows it.
//
// Advance and ReadOwned fail with errs.ErrInsufficientBuffer, consuming nothing, when
// fewer than n bytes remain.
type Reader interface {
	Remaining() int
	Chunk() []byte
	Advance(n int) error
	ReadOwned(n int) (buffer.Bytes, error)
}

// Writer is a cursor over a destination with finite capacity.
//
// RemainingMut is how many more bytes may be written. WriteFrom appends all of src or
// nothing: if len(src) > RemainingMut it fails with errs.ErrInsufficientBuffer and
// the destination is unchanged. An exact fit succeeds.
type Writer interface {
	RemainingMut() int
	WriteFrom(src []byte) error
}

var (
	_ Reader = (*buffer.Bytes)(nil)
	_ Reader = (*buffer.Chain)(nil)
	_ Writer = (*buffer.BytesMut)(nil)
)

// ReadExact fills dst from r and advances r by len(dst).
//
// When the current chunk alone holds len(dst) bytes, a single copy is made. Otherwise
// the read fails with errs.ErrInsufficientBuffer if fewer than len(dst) bytes remain,
// leaving r untouched, and copies chunk by chunk if they do.
func ReadExact(r Reader, dst []byte) error {
	if len(dst) == 0 {
		return nil
	}

	if chunk := r.Chunk(); len(chunk) >= len(dst) {
		copy(dst, chunk)
		return r.Advance(len(dst))
	}

	if rem := r.Remaining(); rem < len(dst) {
		return errs.Insufficient(len(dst), rem)
	}

	for len(dst) > 0 {
		chunk := r.Chunk()
		if len(chunk) == 0 {
			// a conforming reader never gets here; stop instead of spinning
			return errs.Insufficient(len(dst), 0)
		}

		n := copy(dst, chunk)
		if err := r.Advance(n); err != nil {
			return err
		}
		dst = dst[n:]
	}

	return nil
}

// ReadByte consumes and returns a single byte.
func ReadByte(r Reader) (byte, error) {
	if chunk := r.Chunk(); len(chunk) > 0 {
		b := chunk[0]
		return b, r.Advance(1)
	}

	return 0, errs.Insufficient(1, r.Remaining())
}

// WriteByte writes a single byte.
func WriteByte(w Writer, b byte) error {
	return w.WriteFrom([]byte{b})
}

// Skip consumes n bytes without looking at them.
func Skip(r Reader, n int) error {
	return r.Advance(n)
}
