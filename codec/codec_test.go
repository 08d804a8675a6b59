package codec_test

import (
	"testing"

	"github.com/arloliu/octet/buffer"
	"github.com/arloliu/octet/codec"
	"github.com/arloliu/octet/cursor"
	"github.com/arloliu/octet/endian"
	"github.com/arloliu/octet/errs"
	"github.com/arloliu/octet/varint"
	"github.com/stretchr/testify/require"
)

// point is a composite codec built from primitives, the way callers write their own.
type point struct {
	X codec.I32
	Y codec.I32
	Z varint.VarInt[int64]
}

func (p point) Encode(w cursor.Writer) error {
	if err := p.X.Encode(w); err != nil {
		return err
	}
	if err := p.Y.Encode(w); err != nil {
		return err
	}

	return p.Z.Encode(w)
}

func (p *point) Decode(r cursor.Reader) error {
	if err := p.X.Decode(r); err != nil {
		return err
	}
	if err := p.Y.Decode(r); err != nil {
		return err
	}

	return p.Z.Decode(r)
}

func (p point) EncodeLen() int {
	return p.X.EncodeLen() + p.Y.EncodeLen() + p.Z.EncodeLen()
}

func (point) MinEncodeLen() int { return 9 }
func (point) MaxEncodeLen() int { return 18 }

var (
	_ codec.Encoder     = point{}
	_ codec.Decoder     = (*point)(nil)
	_ codec.EncodeLener = point{}
	_ codec.LenHinter   = point{}
)

func TestReadWrite(t *testing.T) {
	m, err := buffer.NewBytesMut()
	require.NoError(t, err)

	p := point{X: 1, Y: -2, Z: varint.Of[int64](-300)}
	require.NoError(t, codec.Write(m, p))
	require.Equal(t, p.EncodeLen(), m.Len())

	b := m.Freeze()
	got, err := codec.Read[point](&b)
	require.NoError(t, err)
	require.Equal(t, p, got)
	require.Equal(t, 0, b.Remaining())
}

func TestMarshalUnmarshal(t *testing.T) {
	p := point{X: 7, Y: 8, Z: varint.Of[int64](9)}

	b, err := codec.Marshal(p)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 7, 0, 0, 0, 8, 18}, b.Bytes())

	got, err := codec.Unmarshal[point](b.Bytes())
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestUnmarshal_TrailingBytes(t *testing.T) {
	_, err := codec.Unmarshal[codec.U16]([]byte{0x01, 0x02, 0x03})
	require.ErrorIs(t, err, errs.ErrTrailingBytes)
	require.Equal(t, errs.KindDomain, errs.KindOf(err))
}

func TestUnmarshal_Insufficient(t *testing.T) {
	_, err := codec.Unmarshal[codec.U32]([]byte{0x01, 0x02})
	require.ErrorIs(t, err, errs.ErrInsufficientBuffer)
	require.Equal(t, errs.KindInsufficientBuffer, errs.KindOf(err))
}

func TestLenBounds(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		lo, hi int
		ok     bool
	}{
		{"fixed", codec.U64(1), 8, 8, true},
		{"unit", codec.Unit{}, 0, 0, true},
		{"hinted", point{}, 9, 18, true},
		{"varint", varint.VarInt[uint32]{}, 1, 5, true},
		{"unbounded", codec.VarBytes{}, 0, 0, false},
		{"not a codec", 42, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := codec.LenBounds(tt.value)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.lo, lo)
			require.Equal(t, tt.hi, hi)
		})
	}
}

func TestFixedByteOrder(t *testing.T) {
	sw := cursor.NewSliceWriter(make([]byte, 14))

	require.NoError(t, codec.WriteUint16(sw, endian.Little(), 0x0102))
	require.NoError(t, codec.WriteUint32(sw, endian.Big(), 0x01020304))
	require.NoError(t, codec.WriteUint64(sw, endian.Little(), 0x0102030405060708))
	require.Equal(t, []byte{
		0x02, 0x01,
		0x01, 0x02, 0x03, 0x04,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}, sw.Bytes())

	r := cursor.NewSliceReader(sw.Bytes())
	v16, err := codec.ReadUint16(r, endian.Little())
	require.NoError(t, err)
	require.Equal(t, uint16(0x0102), v16)

	v32, err := codec.ReadUint32(r, endian.Big())
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), v32)

	v64, err := codec.ReadUint64(r, endian.Little())
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), v64)

	_, err = codec.ReadUint16(r, endian.Big())
	require.ErrorIs(t, err, errs.ErrInsufficientBuffer)

	require.ErrorIs(t, codec.WriteUint16(sw, endian.Big(), 1), errs.ErrInsufficientBuffer)
}
