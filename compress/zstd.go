package compress

// ZstdCompressor uses Zstandard frames.
//
// The default build uses the pure Go klauspost/compress implementation with pooled
// encoders and decoders. Building with the gozstd tag and cgo enabled switches to the
// libzstd bindings from valyala/gozstd. Both produce standard frames and can read
// each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// zstdLevel is the compression level used by both backends.
const zstdLevel = 3

// NewZstdCompressor creates a Zstandard codec.
//
// Example:
//
//	c := compress.NewZstdCompressor()
//	compressed, err := c.Compress(data)
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
