// Package varint implements the variable-length integer encoding used across octet.
//
// # Wire Format
//
// An unsigned value is split into 7-bit groups, least significant first. Each group
// is one byte; the high bit is set on every byte except the last. Zero encodes as a
// single 0x00 byte. Signed values are zigzag mapped before encoding so that small
// negative numbers stay short:
//
//	0 → 0x00    -1 → 0x01    1 → 0x02    -2 → 0x03    300 (unsigned) → 0xAC 0x02
//
// An integer of N bits never needs more than ceil(N/7) bytes. Decoding stops with
// errs.ErrVarIntTooLarge once that many bytes have been read without a terminator,
// so a corrupt stream cannot make the decoder read without bound.
//
// # Usage
//
// VarInt[T] wraps any integer type and implements the codec contract. The free
// functions work on uint64/int64 for callers that manage widths themselves.
package varint
