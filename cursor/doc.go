// Package cursor defines the read and write cursor contracts every octet codec is
// written against, plus adapters for plain slices, io streams and checksumming.
//
// # Contracts
//
// A Reader exposes its unread bytes one contiguous chunk at a time, so the same codec
// works over a single slice (buffer.Bytes, SliceReader) and over fragmented input
// (buffer.Chain). A Writer accepts whole writes or rejects them untouched.
//
// Both report running out of room with errs.ErrInsufficientBuffer; any other error
// comes from the codec layered on top.
//
// # Adapters
//
//   - SliceReader / SliceWriter: cursors over a caller-owned []byte.
//   - NewIOReader / NewIOWriter: expose a cursor as an io.Reader / io.Writer.
//   - HashingReader / HashingWriter: maintain an xxHash64 of every byte that passes.
package cursor
