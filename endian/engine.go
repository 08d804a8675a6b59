// Package endian selects the byte order used by octet's fixed-width codecs.
//
// An Engine is both a binary.ByteOrder and a binary.AppendByteOrder, so fixed-width
// values can be staged into a small stack array and handed to a cursor in one write:
//
//	var scratch [8]byte
//	buf := endian.Default().AppendUint64(scratch[:0], v)
//	err := w.WriteFrom(buf)
//
// Octet's own codecs are big-endian (network order); Little is available for formats
// that need it.
//
// # Thread Safety
//
// Engines are stateless and safe for concurrent use.
package endian

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unsafe"
)

// Engine is a byte order able to both decode from and append to byte slices.
//
// binary.BigEndian and binary.LittleEndian satisfy it.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Big returns the big-endian engine.
func Big() Engine {
	return binary.BigEndian
}

// Little returns the little-endian engine.
func Little() Engine {
	return binary.LittleEndian
}

// Default returns the engine octet's primitive codecs use: big-endian.
func Default() Engine {
	return binary.BigEndian
}

// Native returns the engine matching the host's byte order.
func Native() Engine {
	// 0x0100 stores 0x01 first on big-endian hosts
	var probe uint16 = 0x0100
	if (*[2]byte)(unsafe.Pointer(&probe))[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNative reports whether e matches the host's byte order.
func IsNative(e Engine) bool {
	return e == Native()
}

// Parse returns the engine named by s: "big", "little" or "native", case-insensitive.
func Parse(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big", "be":
		return Big(), nil
	case "little", "le":
		return Little(), nil
	case "native":
		return Native(), nil
	default:
		return nil, fmt.Errorf("endian: unknown byte order %q", s)
	}
}
