// Package codec defines how values turn into bytes and back on top of the cursor
// contracts.
//
// A type is encodable when its value implements Encoder and decodable when its
// pointer implements Decoder. It may also report its exact encoded length
// (EncodeLener), a constant length for every value (FixedLener), or bounds on the
// length (LenHinter), so callers can size buffers before encoding or decide how many
// bytes to wait for before attempting a decode.
//
// # Built-in Types
//
//   - U8..U64, I8..I64, F32, F64: fixed-width, big-endian.
//   - Bool: one byte, 0 or 1.
//   - Unit: zero bytes.
//   - NonZero[T], OptNonZero[T]: fixed-width integers where zero is invalid or means absent.
//   - VarBytes, VarString: varint length prefix followed by the payload.
//
// Variable-length integers live in package varint.
//
// # Errors
//
// Running out of input or capacity yields errs.ErrInsufficientBuffer. Invalid byte
// patterns yield errs.ErrInvalidValue. Decoding is not transactional: on error the
// reader may have been advanced.
package codec
