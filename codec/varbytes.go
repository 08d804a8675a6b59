package codec

import (
	"math"

	"github.com/arloliu/octet/buffer"
	"github.com/arloliu/octet/cursor"
	"github.com/arloliu/octet/errs"
	"github.com/arloliu/octet/varint"
)

// VarBytes is a byte string prefixed with its length as a varint.
//
// Decode takes the payload with ReadOwned, so it shares storage with the source
// wherever the source allows it.
type VarBytes struct {
	B buffer.Bytes
}

// Encode writes the length prefix and the payload. Nothing is written if w cannot
// hold both.
func (v VarBytes) Encode(w cursor.Writer) error {
	if need, rem := v.EncodeLen(), w.RemainingMut(); need > rem {
		return errs.Insufficient(need, rem)
	}
	if err := varint.WriteUvarint(w, uint64(v.B.Len())); err != nil {
		return err
	}

	return w.WriteFrom(v.B.Bytes())
}

func (v *VarBytes) Decode(r cursor.Reader) error {
	payload, err := readPrefixed(r)
	if err != nil {
		return err
	}
	v.B = payload

	return nil
}

// EncodeLen returns the prefix length plus the payload length.
func (v VarBytes) EncodeLen() int {
	return varint.UvarintLen(uint64(v.B.Len())) + v.B.Len()
}

// Equal reports whether both hold the same bytes.
func (v VarBytes) Equal(other VarBytes) bool {
	return v.B.Equal(other.B.Bytes())
}

// VarString is a UTF-8 agnostic string with the same wire format as VarBytes.
type VarString string

func (s VarString) Encode(w cursor.Writer) error {
	if need, rem := s.EncodeLen(), w.RemainingMut(); need > rem {
		return errs.Insufficient(need, rem)
	}
	if err := varint.WriteUvarint(w, uint64(len(s))); err != nil {
		return err
	}

	return w.WriteFrom([]byte(s))
}

func (s *VarString) Decode(r cursor.Reader) error {
	payload, err := readPrefixed(r)
	if err != nil {
		return err
	}
	*s = VarString(payload.Bytes())

	return nil
}

func (s VarString) EncodeLen() int {
	return varint.UvarintLen(uint64(len(s))) + len(s)
}

func readPrefixed(r cursor.Reader) (buffer.Bytes, error) {
	n, err := varint.ReadUvarint(r, 64)
	if err != nil {
		return buffer.Bytes{}, err
	}
	if n > math.MaxInt {
		return buffer.Bytes{}, errs.Invalid("byte string length %d overflows int", n)
	}

	return r.ReadOwned(int(n))
}
