package compress

import (
	"bytes"
	"errors"
	"runtime"
	"testing"

	"github.com/arloliu/octet/buffer"
	"github.com/arloliu/octet/codec"
	"github.com/arloliu/octet/cursor"
	"github.com/arloliu/octet/errs"
	"github.com/arloliu/octet/varint"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func encodeBlock(t *testing.T, blk *Block) []byte {
	t.Helper()

	b, err := codec.Marshal(blk)
	require.NoError(t, err)

	return b.Bytes()
}

func TestBlock_RoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("octet block payload "), 200)

	for _, typ := range []Type{None, Zstd, S2, LZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			blk, err := NewBlock(typ, buffer.New(payload))
			require.NoError(t, err)

			data := encodeBlock(t, blk)
			require.Equal(t, byte(typ), data[0])

			got, err := codec.Unmarshal[Block](data)
			require.NoError(t, err)
			require.Equal(t, typ, got.Type)
			require.True(t, got.Raw.Equal(payload))

			if typ != None {
				require.Less(t, len(data), len(payload))
			}
		})
	}
}

func TestBlock_WireFormat(t *testing.T) {
	blk, err := NewBlock(None, buffer.New([]byte("abc")))
	require.NoError(t, err)

	require.Equal(t, []byte{byte(None), 3, 3, 'a', 'b', 'c'}, encodeBlock(t, blk))
}

func TestBlock_Empty(t *testing.T) {
	for _, typ := range []Type{None, Zstd, S2, LZ4} {
		blk, err := NewBlock(typ, buffer.Bytes{})
		require.NoError(t, err)

		data := encodeBlock(t, blk)
		require.Equal(t, []byte{byte(typ), 0, 0}, data)

		got, err := codec.Unmarshal[Block](data)
		require.NoError(t, err)
		require.True(t, got.Raw.IsEmpty())
	}

	_, err := codec.Unmarshal[Block]([]byte{byte(S2), 0, 1, 0xFF})
	require.ErrorIs(t, err, errs.ErrInvalidValue)
}

func TestBlock_NoneIsZeroCopy(t *testing.T) {
	blk, err := NewBlock(None, buffer.New([]byte("shared")))
	require.NoError(t, err)
	src := buffer.New(encodeBlock(t, blk))
	r := src.Clone()

	var got Block
	require.NoError(t, got.Decode(&r))
	require.Same(t, &src.Bytes()[3], &got.Raw.Bytes()[0])
}

func TestBlock_FragmentedSource(t *testing.T) {
	payload := bytes.Repeat([]byte{1, 2, 3, 4}, 500)
	blk, err := NewBlock(LZ4, buffer.New(payload))
	require.NoError(t, err)
	data := encodeBlock(t, blk)

	chain := buffer.NewChain()
	for start := 0; start < len(data); start += 3 {
		chain.Push(buffer.Copy(data[start:min(len(data), start+3)]))
	}

	var got Block
	require.NoError(t, got.Decode(chain))
	require.True(t, got.Raw.Equal(payload))
	require.Equal(t, 0, chain.Remaining())
}

func TestBlock_DecodeErrors(t *testing.T) {
	good, err := NewBlock(S2, buffer.New(bytes.Repeat([]byte("xy"), 100)))
	require.NoError(t, err)
	data := encodeBlock(t, good)

	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{"unknown type", append([]byte{0x09}, data[1:]...), errs.ErrInvalidValue},
		{"zero type", append([]byte{0x00}, data[1:]...), errs.ErrInvalidValue},
		{"truncated payload", data[:len(data)-1], errs.ErrInsufficientBuffer},
		{"truncated header", data[:1], errs.ErrInsufficientBuffer},
		{"empty", nil, errs.ErrInsufficientBuffer},
		{"raw length too large", []byte{byte(S2), 0xFF, 0xFF, 0xFF, 0xFF, 0x7F, 0}, errs.ErrInvalidValue},
		{"none length mismatch", []byte{byte(None), 4, 3, 'a', 'b', 'c'}, errs.ErrInvalidValue},
		{"garbage payload", []byte{byte(LZ4), 8, 4, 0xFF, 0xFF, 0xFF, 0xFF}, errs.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Unmarshal[Block](tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBlock_WrongRawLength(t *testing.T) {
	payload := bytes.Repeat([]byte("z"), 300)
	compressed, err := NewZstdCompressor().Compress(payload)
	require.NoError(t, err)

	var data []byte
	data = append(data, byte(Zstd))
	data = varint.AppendUvarint(data, 299)
	data = varint.AppendUvarint(data, uint64(len(compressed)))
	data = append(data, compressed...)

	_, err = codec.Unmarshal[Block](data)
	require.ErrorIs(t, err, errs.ErrInvalidValue)
}

// zstdZeros compresses n zero bytes. Streamed frames carry no content size, so the
// decoder only learns the output length by decoding.
func zstdZeros(t *testing.T, n int, streamed bool) []byte {
	t.Helper()

	if !streamed {
		out, err := NewZstdCompressor().Compress(make([]byte, n))
		require.NoError(t, err)

		return out
	}

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedFastest))
	require.NoError(t, err)
	chunk := make([]byte, 1<<20)
	for written := 0; written < n; written += len(chunk) {
		_, err := enc.Write(chunk)
		require.NoError(t, err)
	}
	require.NoError(t, enc.Close())

	return buf.Bytes()
}

func TestBlock_ZstdOversizedPayloadIsBounded(t *testing.T) {
	const (
		expanded = 64 << 20
		claimed  = 16
		budget   = 8 << 20
	)

	// warm the decoder pools so their construction is not counted
	warm, err := NewBlock(Zstd, buffer.New(bytes.Repeat([]byte("warm"), 64)))
	require.NoError(t, err)
	_, err = codec.Unmarshal[Block](encodeBlock(t, warm))
	require.NoError(t, err)

	for _, streamed := range []bool{false, true} {
		name := "content size"
		if streamed {
			name = "streamed"
		}

		t.Run(name, func(t *testing.T) {
			payload := zstdZeros(t, expanded, streamed)
			require.Less(t, len(payload), 1<<20)

			var data []byte
			data = append(data, byte(Zstd))
			data = varint.AppendUvarint(data, claimed)
			data = varint.AppendUvarint(data, uint64(len(payload)))
			data = append(data, payload...)

			var before, after runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&before)

			var got Block
			err := got.Decode(cursor.NewSliceReader(data))

			runtime.ReadMemStats(&after)
			require.ErrorIs(t, err, errs.ErrInvalidValue)
			require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(budget),
				"decoding must not materialize the oversized payload")
		})
	}
}

func TestZstd_DecompressSizedStopsAtSize(t *testing.T) {
	c := NewZstdCompressor()

	for _, streamed := range []bool{false, true} {
		payload := zstdZeros(t, 4<<20, streamed)

		_, err := c.DecompressSized(payload, 1024)
		require.Error(t, err)

		out, err := c.DecompressSized(payload, 4<<20)
		require.NoError(t, err)
		require.Len(t, out, 4<<20)
	}
}

func TestBlock_MaxRawLen(t *testing.T) {
	payload := make([]byte, 100)

	blk, err := NewBlock(Zstd, buffer.New(payload), WithMaxRawLen(64))
	require.NoError(t, err)

	_, err = codec.Marshal(blk)
	require.ErrorIs(t, err, errs.ErrInvalidValue)

	open, err := NewBlock(Zstd, buffer.New(payload))
	require.NoError(t, err)
	data := encodeBlock(t, open)

	limited, err := NewBlock(Zstd, buffer.Bytes{}, WithMaxRawLen(64))
	require.NoError(t, err)
	err = limited.Decode(cursor.NewSliceReader(data))
	require.ErrorIs(t, err, errs.ErrInvalidValue)

	_, err = NewBlock(None, buffer.Bytes{}, WithMaxRawLen(0))
	require.Error(t, err)
}

type countingCodec struct {
	Codec
	compressed int
}

func (c *countingCodec) Compress(data []byte) ([]byte, error) {
	c.compressed++
	return c.Codec.Compress(data)
}

type failingCodec struct{ NoOpCompressor }

func (failingCodec) Compress([]byte) ([]byte, error) {
	return nil, errors.New("boom")
}

func TestBlock_WithCodec(t *testing.T) {
	counter := &countingCodec{Codec: NewS2Compressor()}
	blk, err := NewBlock(S2, buffer.New([]byte("custom codec")), WithCodec(S2, counter))
	require.NoError(t, err)

	data := encodeBlock(t, blk)
	require.Equal(t, 1, counter.compressed)

	got, err := codec.Unmarshal[Block](data)
	require.NoError(t, err)
	require.True(t, got.Raw.Equal([]byte("custom codec")))

	failing, err := NewBlock(LZ4, buffer.New([]byte("x")), WithCodec(LZ4, failingCodec{}))
	require.NoError(t, err)
	_, err = codec.Marshal(failing)
	require.ErrorContains(t, err, "boom")

	_, err = NewBlock(None, buffer.Bytes{}, WithCodec(Type(0), counter))
	require.Error(t, err)
	_, err = NewBlock(None, buffer.Bytes{}, WithCodec(S2, nil))
	require.Error(t, err)
}

func TestBlock_InsufficientWriter(t *testing.T) {
	blk, err := NewBlock(None, buffer.New([]byte("abcdef")))
	require.NoError(t, err)

	buf := make([]byte, 8)
	w := cursor.NewSliceWriter(buf)
	require.ErrorIs(t, blk.Encode(w), errs.ErrInsufficientBuffer)
	require.Equal(t, 0, w.Len(), "header must not be written without the payload")

	var zero Block
	zero.Raw = buffer.New([]byte("x"))
	require.Error(t, zero.Encode(cursor.NewSliceWriter(make([]byte, 16))), "zero Type cannot encode")
}

func TestBlock_Ratio(t *testing.T) {
	blk, err := NewBlock(Zstd, buffer.New(make([]byte, 4096)))
	require.NoError(t, err)

	ratio, err := blk.Ratio()
	require.NoError(t, err)
	require.Less(t, ratio, 0.1)

	empty, err := NewBlock(Zstd, buffer.Bytes{})
	require.NoError(t, err)
	ratio, err = empty.Ratio()
	require.NoError(t, err)
	require.Zero(t, ratio)
}
