package record

import (
	"bufio"
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dvoshchepynets/qsh/qsherr"
)

func encodeStockFrame(count int64, quotes ...[2]int64) []byte {
	buf := sleb(count)
	for _, q := range quotes {
		buf = append(buf, sleb(q[0])...)
		buf = append(buf, sleb(q[1])...)
	}

	return buf
}

func TestStockDecoder_MultipleQuotes(t *testing.T) {
	raw := encodeStockFrame(3,
		[2]int64{100, 10},
		[2]int64{-5, 20},
		[2]int64{2, 30},
	)

	ts := time.Date(2015, time.March, 2, 6, 59, 50, 0, time.UTC)

	var dec StockDecoder
	stock, err := dec.Read(bufio.NewReader(bytes.NewReader(raw)), ts)
	require.NoError(t, err)

	require.True(t, stock.Timestamp.Equal(ts))
	require.Len(t, stock.Quotes, 3)
	require.Equal(t, Quote{Rate: 100, Volume: 10}, stock.Quotes[0])
	require.Equal(t, Quote{Rate: 95, Volume: 20}, stock.Quotes[1])
	require.Equal(t, Quote{Rate: 97, Volume: 30}, stock.Quotes[2])
}

func TestStockDecoder_ZeroQuotes(t *testing.T) {
	raw := encodeStockFrame(0)

	var dec StockDecoder
	stock, err := dec.Read(bufio.NewReader(bytes.NewReader(raw)), time.Now())
	require.NoError(t, err)
	require.Empty(t, stock.Quotes)
}

func TestStockDecoder_NegativeCountRejected(t *testing.T) {
	raw := sleb(-1)

	var dec StockDecoder
	_, err := dec.Read(bufio.NewReader(bytes.NewReader(raw)), time.Now())
	require.ErrorIs(t, err, qsherr.ErrInvalidFrameCount)
}

func TestStockDecoder_OversizedCountRejectedWithoutAllocating(t *testing.T) {
	raw := sleb(maxStockQuoteCount + 1)

	var dec StockDecoder
	_, err := dec.Read(bufio.NewReader(bytes.NewReader(raw)), time.Now())
	require.ErrorIs(t, err, qsherr.ErrInvalidFrameCount)
}

func TestStockDecoder_RateAccumulatesAcrossFrames(t *testing.T) {
	first := encodeStockFrame(1, [2]int64{50, 1})
	second := encodeStockFrame(1, [2]int64{10, 1})

	var dec StockDecoder
	src := bufio.NewReader(bytes.NewReader(append(first, second...)))

	s1, err := dec.Read(src, time.Now())
	require.NoError(t, err)
	require.Equal(t, int64(50), s1.Quotes[0].Rate)

	s2, err := dec.Read(src, time.Now())
	require.NoError(t, err)
	require.Equal(t, int64(60), s2.Quotes[0].Rate)
}

func TestStockDecoder_TruncatedCount(t *testing.T) {
	var dec StockDecoder
	_, err := dec.Read(bufio.NewReader(bytes.NewReader(nil)), time.Now())
	require.Error(t, err)
}
