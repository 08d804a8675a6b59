// Package buffer provides the byte containers octet cursors read from and write to.
//
// # Types
//
//   - Bytes: immutable, reference-counted byte view with O(1) slicing. *Bytes is a read
//     cursor over a single contiguous region.
//   - BytesMut: growable write cursor, optionally bounded and optionally pooled.
//     Freeze turns it into a Bytes without copying.
//   - Chain: read cursor over several Bytes fragments. It reports the total remaining
//     length but exposes only one fragment at a time through Chunk.
//   - ByteChunks: double-ended iterator over fixed-size chunks of a Bytes with
//     constant-time Nth and NthBack.
//
// # Ownership
//
// A Bytes handle owns one reference to its storage. Clone, Slice, SplitTo and
// SplitOff create new handles; Release drops one. Memory drawn from a pool (see
// WithPooled) returns to it when the last reference is released. For unpooled memory
// Release is optional.
//
// # Thread Safety
//
// Bytes handles may be read and released from multiple goroutines. BytesMut, Chain
// and ByteChunks are cursors and must be owned by one goroutine at a time.
package buffer
