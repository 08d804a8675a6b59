package buffer

import "github.com/arloliu/octet/errs"

// Chain is a read cursor over a sequence of Bytes fragments.
//
// Remaining counts every unread byte across all fragments, while Chunk only exposes
// the current fragment; callers that need more must Advance past it first.
// Empty fragments are never stored, so Chunk is non-empty whenever Remaining is.
type Chain struct {
	parts []Bytes
	rem   int
}

// NewChain creates a Chain over parts. The chain takes its own reference to each
// fragment.
func NewChain(parts ...Bytes) *Chain {
	c := &Chain{parts: make([]Bytes, 0, len(parts))}
	for _, p := range parts {
		c.Push(p)
	}

	return c
}

// Push appends a fragment to the end of the chain.
func (c *Chain) Push(b Bytes) {
	if b.IsEmpty() {
		return
	}
	c.parts = append(c.parts, b.Clone())
	c.rem += b.Len()
}

// Fragments returns the number of unread fragments.
func (c *Chain) Fragments() int {
	return len(c.parts)
}

// Remaining returns the number of unread bytes across all fragments.
func (c *Chain) Remaining() int {
	return c.rem
}

// Chunk returns the unread part of the current fragment.
func (c *Chain) Chunk() []byte {
	if len(c.parts) == 0 {
		return nil
	}

	return c.parts[0].Bytes()
}

// Advance consumes n bytes, crossing fragment boundaries as needed. Fully consumed
// fragments are released.
func (c *Chain) Advance(n int) error {
	if n < 0 {
		panic("buffer: negative advance")
	}
	if n > c.rem {
		return errs.Insufficient(n, c.rem)
	}

	for n > 0 {
		head := &c.parts[0]
		if n < head.Len() {
			head.skip(n)
			c.rem -= n

			return nil
		}
		n -= head.Len()
		c.rem -= head.Len()
		c.popFront()
	}

	return nil
}

// ReadOwned consumes n bytes and returns them as a Bytes. When the current fragment
// holds all n bytes the result shares its storage; otherwise the bytes are copied
// into a fresh allocation.
func (c *Chain) ReadOwned(n int) (Bytes, error) {
	if n < 0 {
		panic("buffer: negative read")
	}
	if n > c.rem {
		return Bytes{}, errs.Insufficient(n, c.rem)
	}
	if n == 0 {
		return Bytes{}, nil
	}

	if head := &c.parts[0]; n <= head.Len() {
		out := head.SplitTo(n)
		c.rem -= n
		if head.IsEmpty() {
			c.popFront()
		}

		return out, nil
	}

	data := make([]byte, n)
	for i := 0; i < n; {
		k := copy(data[i:], c.parts[0].Bytes())
		i += k
		if err := c.Advance(k); err != nil {
			return Bytes{}, err
		}
	}

	return New(data), nil
}

// Release drops the chain's references to all unread fragments.
func (c *Chain) Release() {
	for i := range c.parts {
		c.parts[i].Release()
	}
	c.parts = nil
	c.rem = 0
}

func (c *Chain) popFront() {
	c.parts[0].Release()
	c.parts = c.parts[1:]
}
