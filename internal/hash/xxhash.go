// Package hash wraps xxHash64, the checksum used by octet's digest cursors.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 returns the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates an xxHash64 over bytes fed to it in pieces.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Update feeds p into the digest.
func (d *Digest) Update(p []byte) {
	// xxhash.Digest.Write never fails
	_, _ = d.d.Write(p)
}

// Sum64 returns the hash of everything fed so far.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}

// Reset clears the digest.
func (d *Digest) Reset() {
	d.d.Reset()
}
