// Package codectest provides assertions for testing codec implementations.
//
// A typical test checks that a value survives encoding and that its length reporting
// is honest:
//
//	func TestPoint(t *testing.T) {
//	    codectest.HintRoundTrip(t, Point{X: 1, Y: -2})
//	}
package codectest

import (
	"github.com/arloliu/octet/buffer"
	"github.com/arloliu/octet/codec"
	"github.com/stretchr/testify/require"
)

// TB is the subset of testing.TB the assertions need.
type TB interface {
	require.TestingT
	Helper()
}

// RoundTrip encodes v, decodes it back from both a contiguous and a byte-per-fragment
// source, and asserts that each decode consumed every byte and reproduced v. Values
// with an Equal(T) bool method are compared with it; all others with require.Equal.
//
// It returns the encoded bytes.
func RoundTrip[T codec.Encoder, PT codec.DecoderPtr[T]](tb TB, v T) []byte {
	tb.Helper()

	encoded, err := codec.Marshal(v)
	require.NoError(tb, err, "encode %v", v)
	data := encoded.Bytes()

	got, err := codec.Unmarshal[T, PT](data)
	require.NoError(tb, err, "decode %x", data)
	requireSame(tb, v, got)

	chain := buffer.NewChain()
	for i := range data {
		chain.Push(buffer.Copy(data[i : i+1]))
	}
	fragmented, err := codec.Read[T, PT](chain)
	require.NoError(tb, err, "decode %x from fragments", data)
	require.Zero(tb, chain.Remaining(), "fragmented decode left bytes")
	requireSame(tb, v, fragmented)

	return data
}

// EncodeLenHint asserts that v's reported lengths match what Encode writes: EncodeLen
// if v implements codec.EncodeLener, and the bounds of codec.LenBounds if its type
// declares any.
func EncodeLenHint[T codec.Encoder](tb TB, v T) {
	tb.Helper()

	encoded, err := codec.Marshal(v)
	require.NoError(tb, err, "encode %v", v)
	n := encoded.Len()

	if l, ok := any(v).(codec.EncodeLener); ok {
		require.Equal(tb, l.EncodeLen(), n, "EncodeLen of %v", v)
	}

	if lo, hi, ok := codec.LenBounds(v); ok {
		require.LessOrEqual(tb, lo, hi, "length bounds of %v", v)
		require.GreaterOrEqual(tb, n, lo, "encoded %v shorter than its minimum", v)
		require.LessOrEqual(tb, n, hi, "encoded %v longer than its maximum", v)
	}
}

// HintRoundTrip runs EncodeLenHint and RoundTrip.
func HintRoundTrip[T codec.Encoder, PT codec.DecoderPtr[T]](tb TB, v T) []byte {
	tb.Helper()
	EncodeLenHint(tb, v)

	return RoundTrip[T, PT](tb, v)
}

func requireSame[T any](tb TB, want, got T) {
	tb.Helper()

	if eq, ok := any(want).(interface{ Equal(T) bool }); ok {
		require.True(tb, eq.Equal(got), "round trip mismatch: want %v, got %v", want, got)
		return
	}
	require.Equal(tb, want, got)
}
