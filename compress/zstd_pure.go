//go:build !(gozstd && cgo)

package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Decoders run allocation-free once warmed up, so both kinds are pooled.
var zstdDecoderPool = newZstdDecoderPool()

// zstdSizedDecoderPool holds decoders that never write past cap(dst). A frame that
// decodes to more than the caller's size fails instead of growing the output.
var zstdSizedDecoderPool = newZstdDecoderPool(zstd.WithDecodeAllCapLimit(true))

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(zstdLevel)),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: create zstd encoder: %v", err))
		}

		return encoder
	},
}

func newZstdDecoderPool(extra ...zstd.DOption) *sync.Pool {
	opts := append([]zstd.DOption{
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	}, extra...)

	return &sync.Pool{
		New: func() any {
			decoder, err := zstd.NewReader(nil, opts...)
			if err != nil {
				panic(fmt.Sprintf("compress: create zstd decoder: %v", err))
			}

			return decoder
		},
	}
}

// Compress compresses data with a pooled encoder.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses data with a pooled decoder. The output grows to whatever
// the frames hold; use DecompressSized for untrusted input.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return zstdDecode(zstdDecoderPool, data, nil)
}

// DecompressSized decompresses into a buffer of capacity size and fails as soon as
// the frames would produce more, so at most size bytes are allocated for the output.
func (c ZstdCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		if size != 0 {
			return nil, sizeMismatch(Zstd, size, 0)
		}

		return nil, nil
	}

	out, err := zstdDecode(zstdSizedDecoderPool, data, make([]byte, 0, size))
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
		return nil, fmt.Errorf("compress: Zstd payload exceeds %d bytes: %w", size, err)
	}
	if err != nil {
		return nil, err
	}
	if len(out) != size {
		return nil, sizeMismatch(Zstd, size, len(out))
	}

	return out, nil
}

func zstdDecode(pool *sync.Pool, data, dst []byte) ([]byte, error) {
	decoder, _ := pool.Get().(*zstd.Decoder)
	defer pool.Put(decoder)

	// a failed DecodeAll leaves the decoder reusable
	out, err := decoder.DecodeAll(data, dst)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
