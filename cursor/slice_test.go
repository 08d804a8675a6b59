package cursor

import (
	"testing"

	"github.com/arloliu/octet/errs"
	"github.com/stretchr/testify/require"
)

func TestSliceReader(t *testing.T) {
	require := require.New(t)

	data := []byte{1, 2, 3, 4, 5}
	r := NewSliceReader(data)
	require.Equal(5, r.Remaining())

	owned, err := r.ReadOwned(2)
	require.NoError(err)
	require.True(owned.Equal([]byte{1, 2}))
	require.Same(&data[0], &owned.Bytes()[0], "ReadOwned aliases the slice")
	require.Equal(2, cap(owned.Bytes()))

	require.NoError(r.Advance(1))
	require.Equal([]byte{4, 5}, r.Chunk())

	_, err = r.ReadOwned(3)
	require.ErrorIs(err, errs.ErrInsufficientBuffer)
	require.ErrorIs(r.Advance(3), errs.ErrInsufficientBuffer)
	require.Equal(2, r.Remaining())

	owned, err = r.ReadOwned(0)
	require.NoError(err)
	require.True(owned.IsEmpty())

	require.Panics(func() { _ = r.Advance(-1) })
	require.Panics(func() { _, _ = r.ReadOwned(-1) })
}

func TestSliceWriter(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 4)
	w := NewSliceWriter(buf)
	require.Equal(4, w.RemainingMut())

	require.NoError(w.WriteFrom([]byte{1, 2}))
	require.Equal(2, w.RemainingMut())

	err := w.WriteFrom([]byte{3, 4, 5})
	require.ErrorIs(err, errs.ErrInsufficientBuffer)
	require.Equal([]byte{1, 2, 0, 0}, buf, "rejected write leaves the buffer untouched")

	require.NoError(w.WriteFrom([]byte{3, 4}), "exact fit succeeds")
	require.Equal(0, w.RemainingMut())
	require.Equal(4, w.Len())
	require.Equal([]byte{1, 2, 3, 4}, w.Bytes())

	require.NoError(w.WriteFrom(nil))
	require.ErrorIs(w.WriteFrom([]byte{6}), errs.ErrInsufficientBuffer)
}

func TestSliceWriter_ZeroCapacity(t *testing.T) {
	w := NewSliceWriter(nil)

	require.Equal(t, 0, w.RemainingMut())
	require.NoError(t, w.WriteFrom([]byte{}))
	require.ErrorIs(t, w.WriteFrom([]byte{1}), errs.ErrInsufficientBuffer)
}
