package compress

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/octet/buffer"
	"github.com/arloliu/octet/cursor"
	"github.com/arloliu/octet/errs"
	"github.com/arloliu/octet/internal/options"
	"github.com/arloliu/octet/varint"
)

// DefaultMaxRawLen is the largest decompressed payload a Block decodes unless
// configured otherwise.
const DefaultMaxRawLen = 64 * 1024 * 1024

// headerMaxLen is the type byte plus two 64-bit varints.
const headerMaxLen = 1 + 2*varint.MaxLen64

type blockConfig struct {
	maxRawLen int
	codecs    map[Type]Codec
}

// BlockOption configures a Block.
type BlockOption = options.Option[*blockConfig]

// WithMaxRawLen bounds the decompressed size a Block accepts, on both encode and
// decode.
func WithMaxRawLen(n int) BlockOption {
	return options.New(func(c *blockConfig) error {
		if n <= 0 {
			return errors.New("compress: max raw length must be positive")
		}
		c.maxRawLen = n

		return nil
	})
}

// WithCodec replaces the built-in codec used for t.
func WithCodec(t Type, codec Codec) BlockOption {
	return options.New(func(c *blockConfig) error {
		if !t.Valid() {
			return fmt.Errorf("compress: cannot register codec for type %s", t)
		}
		if codec == nil {
			return errors.New("compress: codec cannot be nil")
		}
		if c.codecs == nil {
			c.codecs = make(map[Type]Codec, 1)
		}
		c.codecs[t] = codec

		return nil
	})
}

// Block is a compressed byte payload that implements the codec contract.
//
// Wire format:
//
//	[type:1][raw length:uvarint][compressed length:uvarint][compressed payload]
//
// Decoding checks the declared lengths against the configured bound before
// allocating, then checks that the payload decompresses to exactly the raw length.
// Any mismatch fails with errs.ErrInvalidValue; a short source fails with
// errs.ErrInsufficientBuffer like every other codec.
//
// The zero Block decodes with the default limits. Type must be set before encoding.
type Block struct {
	// Type is the algorithm used by Encode and reported by Decode.
	Type Type
	// Raw is the uncompressed payload.
	Raw buffer.Bytes

	cfg *blockConfig
}

// NewBlock creates a Block that compresses raw with t.
//
// Parameters:
//   - t: compression algorithm
//   - raw: uncompressed payload; the Block shares it
//   - opts: WithMaxRawLen, WithCodec
//
// Returns:
//   - *Block: the block
//   - error: an option was invalid
func NewBlock(t Type, raw buffer.Bytes, opts ...BlockOption) (*Block, error) {
	cfg := &blockConfig{maxRawLen: DefaultMaxRawLen}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Block{Type: t, Raw: raw, cfg: cfg}, nil
}

// Encode compresses Raw and writes the block. Nothing is written if w cannot hold
// the whole block.
func (b Block) Encode(w cursor.Writer) error {
	rawLen := b.Raw.Len()
	if rawLen > b.maxRawLen() {
		return errs.Invalid("block payload of %d bytes exceeds limit %d", rawLen, b.maxRawLen())
	}

	codec, err := b.codec(b.Type)
	if err != nil {
		return err
	}

	var payload []byte
	if rawLen > 0 {
		if payload, err = codec.Compress(b.Raw.Bytes()); err != nil {
			return fmt.Errorf("compress: %s: %w", b.Type, err)
		}
	}

	var scratch [headerMaxLen]byte
	header := append(scratch[:0], byte(b.Type))
	header = varint.AppendUvarint(header, uint64(rawLen))
	header = varint.AppendUvarint(header, uint64(len(payload)))

	if need, rem := len(header)+len(payload), w.RemainingMut(); need > rem {
		return errs.Insufficient(need, rem)
	}
	if err := w.WriteFrom(header); err != nil {
		return err
	}

	return w.WriteFrom(payload)
}

// Decode reads a block and decompresses its payload into Raw.
//
// A None block's payload is taken with ReadOwned and shares storage with the source.
func (b *Block) Decode(r cursor.Reader) error {
	tb, err := cursor.ReadByte(r)
	if err != nil {
		return err
	}
	t := Type(tb)
	if !t.Valid() {
		return errs.Invalid("unknown compression type %#02x", tb)
	}

	rawLen, err := readLen(r, "raw", b.maxRawLen())
	if err != nil {
		return err
	}
	compLen, err := readLen(r, "compressed", math.MaxInt)
	if err != nil {
		return err
	}
	if rawLen == 0 && compLen != 0 {
		return errs.Invalid("empty %s block carries %d payload bytes", t, compLen)
	}

	codec, err := b.codec(t)
	if err != nil {
		return err
	}

	payload, err := r.ReadOwned(compLen)
	if err != nil {
		return err
	}

	b.Type = t
	if rawLen == 0 {
		b.Raw = buffer.Bytes{}
		return nil
	}
	if t == None && compLen == rawLen {
		b.Raw = payload
		return nil
	}

	raw, err := codec.DecompressSized(payload.Bytes(), rawLen)
	payload.Release()
	if err != nil {
		return fmt.Errorf("%w: %s block: %w", errs.ErrInvalidValue, t, err)
	}
	b.Raw = buffer.New(raw)

	return nil
}

// Ratio returns compressed size over raw size for the current payload, or 0 for an
// empty one.
func (b Block) Ratio() (float64, error) {
	if b.Raw.IsEmpty() {
		return 0, nil
	}

	codec, err := b.codec(b.Type)
	if err != nil {
		return 0, err
	}
	compressed, err := codec.Compress(b.Raw.Bytes())
	if err != nil {
		return 0, err
	}

	return float64(len(compressed)) / float64(b.Raw.Len()), nil
}

func (b Block) maxRawLen() int {
	if b.cfg == nil {
		return DefaultMaxRawLen
	}

	return b.cfg.maxRawLen
}

func (b Block) codec(t Type) (Codec, error) {
	if b.cfg != nil {
		if c, ok := b.cfg.codecs[t]; ok {
			return c, nil
		}
	}

	return GetCodec(t)
}

func readLen(r cursor.Reader, what string, limit int) (int, error) {
	n, err := varint.ReadUvarint(r, 64)
	if err != nil {
		return 0, err
	}
	if n > uint64(limit) {
		return 0, errs.Invalid("%s length %d exceeds limit %d", what, n, limit)
	}

	return int(n), nil
}
