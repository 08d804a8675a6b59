// Package pool provides reusable growable byte buffers for octet's write cursors.
package pool

import "sync"

const (
	DefaultBufferSize      = 512       // DefaultBufferSize is the capacity of a freshly pooled buffer.
	DefaultBufferMaxRetain = 64 * 1024 // DefaultBufferMaxRetain is the largest capacity the default pool keeps.
)

// ByteBuffer is a growable byte slice that can be recycled through a ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates an empty ByteBuffer with the given capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the written portion of the buffer.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of written bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data, growing the buffer if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)
}

// Grow makes room for at least n more bytes without a further reallocation.
//
// Small buffers grow by DefaultBufferSize at a time; once the capacity exceeds four
// times that, growth is 25% of the current capacity. Either way the buffer grows by
// at least n.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := DefaultBufferSize
	if cap(bb.B) > 4*DefaultBufferSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	grown := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(grown, bb.B)
	bb.B = grown
}

// ByteBufferPool recycles ByteBuffers through a sync.Pool.
//
// Buffers whose capacity grew beyond maxRetain are dropped on Put instead of being
// kept alive by the pool.
type ByteBufferPool struct {
	pool      sync.Pool
	maxRetain int
}

// NewByteBufferPool creates a pool of buffers with the given initial capacity.
// A maxRetain of zero keeps buffers of any size.
func NewByteBufferPool(size, maxRetain int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(size)
			},
		},
		maxRetain: maxRetain,
	}
}

// Get returns an empty buffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool. bb must not be used afterwards.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if p.maxRetain > 0 && cap(bb.B) > p.maxRetain {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(DefaultBufferSize, DefaultBufferMaxRetain)

// Default returns the process-wide buffer pool.
func Default() *ByteBufferPool {
	return defaultPool
}
