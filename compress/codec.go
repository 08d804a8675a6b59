package compress

import "fmt"

// Compressor compresses a whole payload in one call.
//
// The returned slice is owned by the caller. The input is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Decompress discovers the output size on its own. DecompressSized is given the
// expected size up front, allocates exactly that much, and fails if the payload
// does not decode to exactly size bytes. Block uses the latter so a corrupt length
// cannot make a decoder allocate without bound.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
	DecompressSized(data []byte, size int) ([]byte, error)
}

// Codec combines both directions.
//
// All built-in codecs are stateless values and safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCompressor(),
	Zstd: NewZstdCompressor(),
	S2:   NewS2Compressor(),
	LZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for t.
func GetCodec(t Type) (Codec, error) {
	if c, ok := builtinCodecs[t]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("compress: unsupported compression type %s (%#02x)", t, uint8(t))
}

func sizeMismatch(t Type, want, got int) error {
	return fmt.Errorf("compress: %s payload decoded to %d bytes, expected %d", t, got, want)
}
