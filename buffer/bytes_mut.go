package buffer

import (
	"errors"
	"math"

	"github.com/arloliu/octet/errs"
	"github.com/arloliu/octet/internal/options"
	"github.com/arloliu/octet/internal/pool"
)

type bytesMutConfig struct {
	capacity int
	limit    int
	pool     *pool.ByteBufferPool
}

// BytesMutOption configures a BytesMut.
type BytesMutOption = options.Option[*bytesMutConfig]

// WithCapacity pre-allocates room for n bytes.
func WithCapacity(n int) BytesMutOption {
	return options.New(func(c *bytesMutConfig) error {
		if n < 0 {
			return errors.New("buffer: capacity cannot be negative")
		}
		c.capacity = n

		return nil
	})
}

// WithLimit caps the total length of the buffer at n bytes. Writes that would exceed
// the cap fail with errs.ErrInsufficientBuffer. A limit of 0 means unbounded.
func WithLimit(n int) BytesMutOption {
	return options.New(func(c *bytesMutConfig) error {
		if n < 0 {
			return errors.New("buffer: limit cannot be negative")
		}
		c.limit = n

		return nil
	})
}

// WithPooled draws backing memory from the shared buffer pool. Memory handed out by
// Freeze returns to the pool once every Bytes referring to it has been released.
func WithPooled() BytesMutOption {
	return options.NoError(func(c *bytesMutConfig) {
		c.pool = pool.Default()
	})
}

// BytesMut is a growable write cursor.
//
// An unbounded BytesMut never fails a write for lack of capacity; RemainingMut
// reports math.MaxInt minus the written length. Freeze hands the written bytes over
// as an immutable Bytes without copying.
type BytesMut struct {
	buf      *pool.ByteBuffer
	pool     *pool.ByteBufferPool
	limit    int
	capacity int
}

// NewBytesMut creates an empty BytesMut.
//
// Parameters:
//   - opts: WithCapacity, WithLimit, WithPooled
//
// Returns:
//   - *BytesMut: the buffer
//   - error: an option was invalid
func NewBytesMut(opts ...BytesMutOption) (*BytesMut, error) {
	cfg := &bytesMutConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.limit > 0 && cfg.capacity > cfg.limit {
		cfg.capacity = cfg.limit
	}

	m := &BytesMut{
		pool:     cfg.pool,
		limit:    cfg.limit,
		capacity: cfg.capacity,
	}
	m.buf = m.acquire()

	return m, nil
}

// RemainingMut returns how many more bytes can be written.
func (m *BytesMut) RemainingMut() int {
	if m.limit > 0 {
		return m.limit - m.Len()
	}

	return math.MaxInt - m.Len()
}

// WriteFrom appends src. Nothing is written if src does not fit.
func (m *BytesMut) WriteFrom(src []byte) error {
	if rem := m.RemainingMut(); len(src) > rem {
		return errs.Insufficient(len(src), rem)
	}
	m.buffer().MustWrite(src)

	return nil
}

// Reserve makes room for n more bytes without changing the length.
func (m *BytesMut) Reserve(n int) {
	m.buffer().Grow(n)
}

// Len returns the number of written bytes.
func (m *BytesMut) Len() int {
	if m.buf == nil {
		return 0
	}

	return m.buf.Len()
}

// Bytes returns the written bytes. The slice is valid until the next write, Reset,
// Freeze or Release.
func (m *BytesMut) Bytes() []byte {
	if m.buf == nil {
		return nil
	}

	return m.buf.Bytes()
}

// Reset discards the written bytes and keeps the allocation.
func (m *BytesMut) Reset() {
	if m.buf != nil {
		m.buf.Reset()
	}
}

// Freeze returns the written bytes as an immutable Bytes and leaves m empty and
// ready for reuse.
func (m *BytesMut) Freeze() Bytes {
	if m.Len() == 0 {
		return Bytes{}
	}

	bb := m.buf
	m.buf = nil

	var release func()
	if p := m.pool; p != nil {
		release = func() { p.Put(bb) }
	}

	return newShared(bb.Bytes(), release)
}

// Release gives the backing memory back to the pool. m stays usable.
func (m *BytesMut) Release() {
	if m.buf != nil && m.pool != nil {
		m.pool.Put(m.buf)
	}
	m.buf = nil
}

func (m *BytesMut) buffer() *pool.ByteBuffer {
	if m.buf == nil {
		m.buf = m.acquire()
	}

	return m.buf
}

func (m *BytesMut) acquire() *pool.ByteBuffer {
	if m.pool == nil {
		return pool.NewByteBuffer(m.capacity)
	}

	bb := m.pool.Get()
	bb.Grow(m.capacity)

	return bb
}
