package delta

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dvoshchepynets/qsh/leb128"
)

// encodeGrowingStream builds the wire bytes for a sequence of Growing
// deltas, using the escape path whenever a delta can't be represented
// directly as a non-escaping ULEB128 value.
func encodeGrowingStream(deltas ...int64) []byte {
	var buf []byte
	for _, d := range deltas {
		if d >= 0 && d < growingEscapeSentinel {
			buf = leb128.EncodeUnsigned(buf, uint64(d))
			continue
		}

		buf = leb128.EncodeUnsigned(buf, growingEscapeSentinel)
		buf = leb128.EncodeSigned(buf, d)
	}

	return buf
}

func TestGrowing_RunningSum(t *testing.T) {
	src := bufio.NewReader(bytes.NewReader(encodeGrowingStream(100, 50, 25)))

	var g Growing
	var got []uint64
	for range 3 {
		v, err := g.Read(src)
		require.NoError(t, err)
		got = append(got, v)
	}

	require.Equal(t, []uint64{100, 150, 175}, got)
}

func TestGrowing_EscapePath_NegativeDelta(t *testing.T) {
	src := bufio.NewReader(bytes.NewReader(encodeGrowingStream(1000, -400)))

	var g Growing
	first, err := g.Read(src)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), first)

	second, err := g.Read(src)
	require.NoError(t, err)
	require.Equal(t, uint64(600), second)
}

func TestGrowing_EscapePath_ExactlyTheSentinel(t *testing.T) {
	src := bufio.NewReader(bytes.NewReader(encodeGrowingStream(growingEscapeSentinel)))

	var g Growing
	v, err := g.Read(src)
	require.NoError(t, err)
	require.Equal(t, uint64(growingEscapeSentinel), v)
}

func TestGrowing_BoundaryValueJustBelowSentinelDoesNotEscape(t *testing.T) {
	src := bufio.NewReader(bytes.NewReader(encodeGrowingStream(growingEscapeSentinel - 1)))

	var observed uint64
	var g Growing
	g.SetDebugHook(func(u uint64) { observed = u })

	v, err := g.Read(src)
	require.NoError(t, err)
	require.Equal(t, uint64(growingEscapeSentinel-1), v)
	require.Equal(t, uint64(growingEscapeSentinel-1), observed)
}

func TestGrowing_NoDebugHookByDefault(t *testing.T) {
	src := bufio.NewReader(bytes.NewReader(encodeGrowingStream(growingEscapeSentinel - 1)))

	var g Growing
	_, err := g.Read(src)
	require.NoError(t, err)
}
