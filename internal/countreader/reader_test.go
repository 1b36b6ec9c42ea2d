package countreader

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReader_OffsetTracksConsumedBytes(t *testing.T) {
	r := New(bytes.NewReader([]byte("hello")))

	b, err := r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte('h'), b)
	require.Equal(t, int64(1), r.Offset())

	buf := make([]byte, 4)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, int64(5), r.Offset())
}

func TestReader_ReadByteAtEOF(t *testing.T) {
	r := New(bytes.NewReader(nil))

	_, err := r.ReadByte()
	require.ErrorIs(t, err, io.EOF)
}

func TestReader_PeekByteThenReadByteReturnsSameByte(t *testing.T) {
	r := New(bytes.NewReader([]byte("ab")))

	peeked, err := r.PeekByte()
	require.NoError(t, err)
	require.Equal(t, byte('a'), peeked)
	require.Equal(t, int64(0), r.Offset(), "peeking must not advance the offset")

	again, err := r.PeekByte()
	require.NoError(t, err)
	require.Equal(t, byte('a'), again)

	got, err := r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte('a'), got)
	require.Equal(t, int64(1), r.Offset())

	got, err = r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte('b'), got)
}

func TestReader_PeekByteAtEOF(t *testing.T) {
	r := New(bytes.NewReader(nil))

	_, err := r.PeekByte()
	require.ErrorIs(t, err, io.EOF)
}
