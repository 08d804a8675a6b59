package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(128)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 128, bb.Cap(), "new buffer should have requested capacity")
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(4)

	bb.MustWrite([]byte("hello"))
	bb.MustWrite(nil)
	bb.MustWrite([]byte(" world"))

	assert.Equal(t, []byte("hello world"), bb.Bytes())
	assert.Equal(t, 11, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(DefaultBufferSize)
	bb.MustWrite([]byte("some data"))
	capBefore := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap(), "Reset should keep capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity is a no-op", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.MustWrite([]byte("abc"))
		ptr := &bb.B[:1][0]

		bb.Grow(10)

		assert.Equal(t, 64, bb.Cap())
		assert.Same(t, ptr, &bb.B[:1][0])
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.MustWrite([]byte("12345678"))

		bb.Grow(1)

		assert.Equal(t, 8+DefaultBufferSize, bb.Cap())
		assert.Equal(t, []byte("12345678"), bb.Bytes())
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * DefaultBufferSize
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]

		bb.Grow(1)

		assert.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("grows at least the requested amount", func(t *testing.T) {
		bb := NewByteBuffer(0)

		bb.Grow(10 * DefaultBufferSize)

		assert.GreaterOrEqual(t, bb.Cap(), 10*DefaultBufferSize)
		assert.Equal(t, 0, bb.Len())
	})
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(32, 0)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 32)

	bb.MustWrite([]byte("payload"))
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len(), "pooled buffers must come back empty")
}

func TestByteBufferPool_PutNil(t *testing.T) {
	require.NotPanics(t, func() {
		Default().Put(nil)
	})
}

func TestByteBufferPool_MaxRetain(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	big := NewByteBuffer(1024)
	big.MustWrite([]byte("oversized"))
	p.Put(big)

	// the oversized buffer is dropped, so it is never handed out again
	for range 10 {
		bb := p.Get()
		require.LessOrEqual(t, bb.Cap(), 64)
	}
}

func TestByteBufferPool_Concurrent(t *testing.T) {
	p := NewByteBufferPool(64, 0)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range 100 {
				bb := p.Get()
				bb.MustWrite([]byte{byte(id)})
				assert.Equal(t, 1, bb.Len())
				p.Put(bb)
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkByteBufferPool_GetWritePut(b *testing.B) {
	p := Default()
	data := make([]byte, 256)

	b.ReportAllocs()
	for b.Loop() {
		bb := p.Get()
		bb.MustWrite(data)
		p.Put(bb)
	}
}
