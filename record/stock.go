package record

import (
	"time"

	"github.com/dvoshchepynets/qsh/delta"
	"github.com/dvoshchepynets/qsh/leb128"
	"github.com/dvoshchepynets/qsh/primitive"
	"github.com/dvoshchepynets/qsh/qsherr"
)

// stockCountWidth and quoteVolumeWidth bound the two raw (non-delta) SLEB128
// fields in a Stock frame: the quote count and each quote's volume.
const (
	stockCountWidth  = 10
	quoteVolumeWidth = 10
)

// maxStockQuoteCount bounds the quote count read off the wire before it is
// used as a slice length, turning a corrupt count into ErrInvalidFrameCount
// instead of an attempted multi-exabyte allocation — the same reasoning
// primitive.Reader applies to string length prefixes via
// stringLengthMaxWidth. No real QSH file approaches this many quotes in one
// frame.
const maxStockQuoteCount = 1 << 20

// Quote is one (rate, volume) pair inside a Stock record. rate is
// delta-decoded against the StockDecoder's running Relative accumulator;
// volume is a plain signed value, not delta-encoded.
type Quote struct {
	Rate   int64
	Volume int64
}

// Stock is one decoded Stock-stream record: a snapshot timestamp shared by
// every quote in the frame, plus the quotes themselves.
type Stock struct {
	Timestamp time.Time
	Quotes    []Quote
}

// StockDecoder decodes a stream of Stock records. rate carries the running
// sum across every quote in every frame the stream produces — the encoder
// never resets it between frames.
type StockDecoder struct {
	rate delta.Relative
}

// Read decodes one Stock record from src. ts is the frame's timestamp,
// decoded by the caller (the enclosing frame header carries it, not the
// record payload itself).
func (d *StockDecoder) Read(src primitive.Source, ts time.Time) (Stock, error) {
	count, _, err := leb128.DecodeSignedFrom(src, stockCountWidth)
	if err != nil {
		return Stock{}, err
	}

	if count < 0 || count > maxStockQuoteCount {
		return Stock{}, qsherr.ErrInvalidFrameCount
	}

	quotes := make([]Quote, count)
	for i := range quotes {
		rate, err := d.rate.Read(src)
		if err != nil {
			return Stock{}, err
		}

		volume, _, err := leb128.DecodeSignedFrom(src, quoteVolumeWidth)
		if err != nil {
			return Stock{}, err
		}

		quotes[i] = Quote{Rate: rate, Volume: volume}
	}

	return Stock{Timestamp: ts, Quotes: quotes}, nil
}
