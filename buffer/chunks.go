package buffer

import (
	"iter"
	"math"
)

// ByteChunks iterates over non-overlapping chunks of a Bytes, each chunkLen long
// except possibly the last one.
//
// Each yielded chunk is an independent handle sharing the original storage. The
// iterator retains exactly the bytes not yet yielded from either end, so forward and
// backward iteration meet consistently: the first chunk taken from the back is the
// short remainder that forward iteration would have produced last.
//
// Example:
//
//	chunks := buffer.New([]byte{1, 2, 3, 4, 5}).Chunks(2)
//	chunks.Next()     // [1 2]
//	chunks.NextBack() // [5]
//	chunks.Next()     // [3 4]
//	chunks.Next()     // none
type ByteChunks struct {
	buf      Bytes
	chunkLen int
}

// NewByteChunks creates an iterator over chunkLen-sized chunks of b. The iterator
// takes its own reference to b.
//
// It panics if chunkLen is less than 1.
func NewByteChunks(b Bytes, chunkLen int) *ByteChunks {
	if chunkLen < 1 {
		panic("buffer: chunk length must be at least 1")
	}

	c := &ByteChunks{buf: b.Clone(), chunkLen: chunkLen}
	c.settle()

	return c
}

// Chunks is shorthand for NewByteChunks(b, chunkLen).
func (b Bytes) Chunks(chunkLen int) *ByteChunks {
	return NewByteChunks(b, chunkLen)
}

// ChunkLen returns the configured chunk length.
func (c *ByteChunks) ChunkLen() int {
	return c.chunkLen
}

// Remaining returns the number of bytes not yet yielded.
func (c *ByteChunks) Remaining() int {
	return c.buf.Len()
}

// Len returns the number of chunks left.
func (c *ByteChunks) Len() int {
	n := c.buf.Len()
	count := n / c.chunkLen
	if n%c.chunkLen != 0 {
		count++
	}

	return count
}

// Next returns the next chunk from the front.
func (c *ByteChunks) Next() (Bytes, bool) {
	if c.buf.IsEmpty() {
		return Bytes{}, false
	}

	chunk := c.buf.SplitTo(min(c.chunkLen, c.buf.Len()))
	c.settle()

	return chunk, true
}

// NextBack returns the next chunk from the back.
func (c *ByteChunks) NextBack() (Bytes, bool) {
	n := c.buf.Len()
	if n == 0 {
		return Bytes{}, false
	}

	size := n % c.chunkLen
	if size == 0 {
		size = c.chunkLen
	}
	chunk := c.buf.SplitOff(n - size)
	c.settle()

	return chunk, true
}

// Nth skips n chunks from the front and returns the one after them, in constant
// time. The result and the iterator state match calling Next n+1 times. If fewer
// than n+1 chunks are left the iterator is exhausted.
//
// It panics if n is negative.
func (c *ByteChunks) Nth(n int) (Bytes, bool) {
	if n < 0 {
		panic("buffer: negative chunk index")
	}

	length := c.buf.Len()
	if n > 0 && c.chunkLen > math.MaxInt/n {
		c.exhaust()
		return Bytes{}, false
	}

	start := n * c.chunkLen
	if start >= length {
		c.exhaust()
		return Bytes{}, false
	}

	end := c.chunkEnd(start, length)
	chunk := c.buf.Slice(start, end)
	c.buf.skip(end)
	c.settle()

	return chunk, true
}

// NthBack skips n chunks from the back and returns the one before them, in constant
// time. The result and the iterator state match calling NextBack n+1 times. If fewer
// than n+1 chunks are left the iterator is exhausted.
//
// It panics if n is negative.
func (c *ByteChunks) NthBack(n int) (Bytes, bool) {
	if n < 0 {
		panic("buffer: negative chunk index")
	}

	count := c.Len()
	if n >= count {
		c.exhaust()
		return Bytes{}, false
	}

	length := c.buf.Len()
	// (count-1-n) chunks precede the target, all full-sized
	start := (count - 1 - n) * c.chunkLen
	end := c.chunkEnd(start, length)
	chunk := c.buf.Slice(start, end)
	c.buf.truncate(start)
	c.settle()

	return chunk, true
}

// All returns an iterator that drains the remaining chunks front to back.
func (c *ByteChunks) All() iter.Seq[Bytes] {
	return func(yield func(Bytes) bool) {
		for {
			chunk, ok := c.Next()
			if !ok || !yield(chunk) {
				return
			}
		}
	}
}

// Backward returns an iterator that drains the remaining chunks back to front.
func (c *ByteChunks) Backward() iter.Seq[Bytes] {
	return func(yield func(Bytes) bool) {
		for {
			chunk, ok := c.NextBack()
			if !ok || !yield(chunk) {
				return
			}
		}
	}
}

// Release drops the iterator's reference to the bytes not yet yielded and
// exhausts it.
func (c *ByteChunks) Release() {
	c.exhaust()
}

// chunkEnd returns min(length, start+chunkLen) without overflowing.
func (c *ByteChunks) chunkEnd(start, length int) int {
	if c.chunkLen > length-start {
		return length
	}

	return start + c.chunkLen
}

func (c *ByteChunks) exhaust() {
	c.buf.Release()
}

// settle drops the reference once nothing is left to yield.
func (c *ByteChunks) settle() {
	if c.buf.IsEmpty() {
		c.buf.Release()
	}
}
