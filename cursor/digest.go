package cursor

import (
	"github.com/arloliu/octet/buffer"
	"github.com/arloliu/octet/internal/hash"
)

// HashingReader wraps a Reader and keeps an xxHash64 of every byte consumed through
// it, whether by Advance or ReadOwned.
type HashingReader struct {
	r      Reader
	digest *hash.Digest
}

var _ Reader = (*HashingReader)(nil)

// NewHashingReader wraps r.
func NewHashingReader(r Reader) *HashingReader {
	return &HashingReader{r: r, digest: hash.NewDigest()}
}

// Remaining returns the wrapped reader's remaining length.
func (h *HashingReader) Remaining() int {
	return h.r.Remaining()
}

// Chunk returns the wrapped reader's current chunk.
func (h *HashingReader) Chunk() []byte {
	return h.r.Chunk()
}

// Advance hashes the next n bytes, then consumes them.
func (h *HashingReader) Advance(n int) error {
	if rem := h.r.Remaining(); n > rem {
		return h.r.Advance(n)
	}

	for n > 0 {
		chunk := h.r.Chunk()
		step := min(n, len(chunk))
		if step == 0 {
			return h.r.Advance(n)
		}

		h.digest.Update(chunk[:step])
		if err := h.r.Advance(step); err != nil {
			return err
		}
		n -= step
	}

	return nil
}

// ReadOwned consumes n bytes and hashes them.
func (h *HashingReader) ReadOwned(n int) (buffer.Bytes, error) {
	out, err := h.r.ReadOwned(n)
	if err != nil {
		return buffer.Bytes{}, err
	}
	h.digest.Update(out.Bytes())

	return out, nil
}

// Sum64 returns the hash of everything consumed so far.
func (h *HashingReader) Sum64() uint64 {
	return h.digest.Sum64()
}

// HashingWriter wraps a Writer and keeps an xxHash64 of every byte it accepts.
type HashingWriter struct {
	w      Writer
	digest *hash.Digest
}

var _ Writer = (*HashingWriter)(nil)

// NewHashingWriter wraps w.
func NewHashingWriter(w Writer) *HashingWriter {
	return &HashingWriter{w: w, digest: hash.NewDigest()}
}

// RemainingMut returns the wrapped writer's remaining capacity.
func (h *HashingWriter) RemainingMut() int {
	return h.w.RemainingMut()
}

// WriteFrom forwards src and hashes it once the write is accepted.
func (h *HashingWriter) WriteFrom(src []byte) error {
	if err := h.w.WriteFrom(src); err != nil {
		return err
	}
	h.digest.Update(src)

	return nil
}

// Sum64 returns the hash of everything written so far.
func (h *HashingWriter) Sum64() uint64 {
	return h.digest.Sum64()
}
