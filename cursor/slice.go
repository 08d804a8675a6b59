package cursor

import (
	"github.com/arloliu/octet/buffer"
	"github.com/arloliu/octet/errs"
)

// SliceReader reads from a caller-owned byte slice.
//
// ReadOwned returns views that alias the slice, so the caller must keep it unchanged
// while they are in use.
type SliceReader struct {
	data []byte
}

var _ Reader = (*SliceReader)(nil)

// NewSliceReader creates a reader over data.
func NewSliceReader(data []byte) *SliceReader {
	return &SliceReader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *SliceReader) Remaining() int {
	return len(r.data)
}

// Chunk returns all unread bytes.
func (r *SliceReader) Chunk() []byte {
	return r.data
}

// Advance consumes n bytes.
func (r *SliceReader) Advance(n int) error {
	if n < 0 {
		panic("cursor: negative advance")
	}
	if n > len(r.data) {
		return errs.Insufficient(n, len(r.data))
	}
	r.data = r.data[n:]

	return nil
}

// ReadOwned consumes n bytes and returns them without copying.
func (r *SliceReader) ReadOwned(n int) (buffer.Bytes, error) {
	if n < 0 {
		panic("cursor: negative read")
	}
	if n > len(r.data) {
		return buffer.Bytes{}, errs.Insufficient(n, len(r.data))
	}

	out := buffer.New(r.data[:n:n])
	r.data = r.data[n:]

	return out, nil
}

// SliceWriter writes into a fixed-capacity, caller-owned byte slice.
type SliceWriter struct {
	buf []byte
	n   int
}

var _ Writer = (*SliceWriter)(nil)

// NewSliceWriter creates a writer that fills buf from the start. Its capacity is
// len(buf).
func NewSliceWriter(buf []byte) *SliceWriter {
	return &SliceWriter{buf: buf}
}

// RemainingMut returns the unused capacity.
func (w *SliceWriter) RemainingMut() int {
	return len(w.buf) - w.n
}

// WriteFrom copies src in. A write that exactly fills the buffer succeeds.
func (w *SliceWriter) WriteFrom(src []byte) error {
	if rem := w.RemainingMut(); len(src) > rem {
		return errs.Insufficient(len(src), rem)
	}
	w.n += copy(w.buf[w.n:], src)

	return nil
}

// Len returns the number of bytes written.
func (w *SliceWriter) Len() int {
	return w.n
}

// Bytes returns the written prefix of the buffer.
func (w *SliceWriter) Bytes() []byte {
	return w.buf[:w.n]
}
