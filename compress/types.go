package compress

import (
	"fmt"
	"strings"
)

// Type identifies a compression algorithm on the wire. It occupies the first byte of
// an encoded Block.
type Type uint8

const (
	None Type = 0x1 // None stores the payload as is.
	Zstd Type = 0x2 // Zstd is Zstandard.
	S2   Type = 0x3 // S2 is the Snappy-compatible S2 format.
	LZ4  Type = 0x4 // LZ4 is the LZ4 block format.
)

func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether t names a built-in algorithm.
func (t Type) Valid() bool {
	return t >= None && t <= LZ4
}

// ParseType returns the Type named by s, case-insensitive.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "none":
		return None, nil
	case "zstd":
		return Zstd, nil
	case "s2":
		return S2, nil
	case "lz4":
		return LZ4, nil
	default:
		return 0, fmt.Errorf("compress: unknown compression type %q", s)
	}
}
