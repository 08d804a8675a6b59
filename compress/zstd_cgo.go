//go:build gozstd && cgo

package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/valyala/gozstd"
)

// Compress compresses data with libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses data with libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}

// DecompressSized streams data through libzstd and reads at most size+1 bytes, so a
// frame that decodes to more than size fails without materializing the excess.
func (c ZstdCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		if size != 0 {
			return nil, sizeMismatch(Zstd, size, 0)
		}

		return nil, nil
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	out := make([]byte, size+1)
	n, err := io.ReadFull(io.LimitReader(zr, int64(size)+1), out)
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
	case err != nil:
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	case n > size:
		return nil, fmt.Errorf("compress: Zstd payload exceeds %d bytes", size)
	}
	if n != size {
		return nil, sizeMismatch(Zstd, size, n)
	}

	return out[:size:size], nil
}
