package buffer

import (
	"bytes"
	"fmt"
	"sync/atomic"

	"github.com/arloliu/octet/errs"
	"github.com/arloliu/octet/internal/hash"
)

// storage is the shared backing allocation of one or more Bytes handles.
type storage struct {
	data    []byte
	refs    atomic.Int64
	release func()
}

// Bytes is an immutable, reference-counted view into a shared byte allocation.
//
// Slicing, cloning and splitting are O(1): they take a reference on the shared
// storage and adjust an offset and length, never copying bytes. The storage is
// never written once a Bytes refers to it, so handles may be read concurrently.
//
// Each handle owns one reference. Release drops it; when the last reference is
// dropped the storage's release hook runs, which returns pooled memory (see
// BytesMut) to its pool. Assigning a Bytes value copies the handle without taking a
// reference; use Clone when the copy must outlive the original's Release.
// Handles over unpooled memory need no Release; the garbage collector reclaims them.
//
// The zero value is an empty buffer.
//
// *Bytes is a read cursor: Remaining, Chunk, Advance and ReadOwned consume the view
// from the front.
type Bytes struct {
	s   *storage
	off int
	n   int
}

// New returns a Bytes that takes ownership of data without copying it.
// The caller must not modify data afterwards.
func New(data []byte) Bytes {
	return newShared(data, nil)
}

// Copy returns a Bytes holding a private copy of data.
func Copy(data []byte) Bytes {
	if len(data) == 0 {
		return Bytes{}
	}

	return newShared(bytes.Clone(data), nil)
}

func newShared(data []byte, release func()) Bytes {
	if len(data) == 0 {
		if release != nil {
			release()
		}

		return Bytes{}
	}

	s := &storage{data: data, release: release}
	s.refs.Store(1)

	return Bytes{s: s, n: len(data)}
}

// Len returns the number of bytes in the view.
func (b Bytes) Len() int {
	return b.n
}

// IsEmpty reports whether the view holds no bytes.
func (b Bytes) IsEmpty() bool {
	return b.n == 0
}

// Bytes returns the viewed bytes. The result must not be modified; its capacity is
// clipped so appending to it reallocates instead of clobbering shared storage.
func (b Bytes) Bytes() []byte {
	if b.s == nil {
		return nil
	}

	return b.s.data[b.off : b.off+b.n : b.off+b.n]
}

// Equal reports whether the view holds exactly p.
func (b Bytes) Equal(p []byte) bool {
	return bytes.Equal(b.Bytes(), p)
}

// Checksum returns the xxHash64 of the viewed bytes.
func (b Bytes) Checksum() uint64 {
	return hash.Sum64(b.Bytes())
}

// Refs returns the number of live references to the backing storage, or 0 for a
// handle without storage.
func (b Bytes) Refs() int64 {
	if b.s == nil {
		return 0
	}

	return b.s.refs.Load()
}

// Clone returns a new handle to the same bytes. It panics if the storage's last
// reference has already been released, which happens when Clone is called on a
// plain copy of a released handle.
func (b Bytes) Clone() Bytes {
	b.retain()
	return b
}

// Slice returns a new handle to b[i:j]. It panics if the bounds are out of range.
func (b Bytes) Slice(i, j int) Bytes {
	if i < 0 || j < i || j > b.n {
		panic(fmt.Sprintf("buffer: slice bounds [%d:%d] out of range with length %d", i, j, b.n))
	}

	out := Bytes{s: b.s, off: b.off + i, n: j - i}
	out.retain()

	return out
}

// SplitTo returns a new handle to the first n bytes and leaves b holding the rest.
// It panics if n is out of range.
func (b *Bytes) SplitTo(n int) Bytes {
	head := b.Slice(0, n)
	b.skip(n)

	return head
}

// SplitOff returns a new handle to the bytes from n onwards and leaves b holding the
// first n. It panics if n is out of range.
func (b *Bytes) SplitOff(n int) Bytes {
	tail := b.Slice(n, b.n)
	b.truncate(n)

	return tail
}

// Release drops this handle's reference and empties it. Releasing an empty handle
// is a no-op.
func (b *Bytes) Release() {
	if b.s != nil && b.s.refs.Add(-1) == 0 && b.s.release != nil {
		b.s.release()
	}
	*b = Bytes{}
}

// Remaining returns the number of unread bytes.
func (b *Bytes) Remaining() int {
	return b.n
}

// Chunk returns all unread bytes; a Bytes is always contiguous.
func (b *Bytes) Chunk() []byte {
	return b.Bytes()
}

// Advance consumes n bytes.
func (b *Bytes) Advance(n int) error {
	if n < 0 {
		panic("buffer: negative advance")
	}
	if n > b.n {
		return errs.Insufficient(n, b.n)
	}
	b.skip(n)

	return nil
}

// ReadOwned consumes n bytes and returns them as a new handle without copying.
func (b *Bytes) ReadOwned(n int) (Bytes, error) {
	if n < 0 {
		panic("buffer: negative read")
	}
	if n > b.n {
		return Bytes{}, errs.Insufficient(n, b.n)
	}

	return b.SplitTo(n), nil
}

func (b *Bytes) retain() {
	if b.s != nil && b.s.refs.Add(1) == 1 {
		b.s.refs.Add(-1)
		panic("buffer: use of Bytes after its storage was released")
	}
}

func (b *Bytes) skip(n int) {
	b.off += n
	b.n -= n
}

func (b *Bytes) truncate(n int) {
	b.n = n
}
