// Package record decodes the two QSH payload shapes the core supports:
// Trades (bit-masked optional fields) and Stock (a length-prefixed array of
// quotes sharing one frame timestamp).
package record

import (
	"time"

	"github.com/dvoshchepynets/qsh/delta"
	"github.com/dvoshchepynets/qsh/leb128"
	"github.com/dvoshchepynets/qsh/primitive"
	"github.com/dvoshchepynets/qsh/qsherr"
)

// TradeDirection is the two-bit sub-enum packed into a Trade record's mask
// byte (bits 0-1).
type TradeDirection uint8

const (
	DirectionUnknown TradeDirection = 0
	DirectionAsk     TradeDirection = 1
	DirectionBid     TradeDirection = 2
)

func (d TradeDirection) String() string {
	switch d {
	case DirectionUnknown:
		return "Unknown"
	case DirectionAsk:
		return "Ask"
	case DirectionBid:
		return "Bid"
	default:
		return "Invalid"
	}
}

// Trade mask bits: bits 0-1 select TradeDirection, bits 2-7 are per-field
// presence flags, processed in this declared order.
const (
	directionMask = 0x03

	bitExchangeDateTime    = 0x04
	bitExchangeTradeNumber = 0x08
	bitBidNumber           = 0x10
	bitTransactionPrice    = 0x20
	bitTransactionVolume   = 0x40
	bitOpenInterest        = 0x80
)

// transactionVolumeWidth bounds the raw SLEB128 transaction_volume field,
// which is not delta-encoded (unlike every other optional Trade field).
const transactionVolumeWidth = 10

// Trade is one decoded Deals-stream record. Fields absent from the wire
// (per the mask byte) are zero-valued Optional values with Present == false.
type Trade struct {
	Direction           TradeDirection
	ExchangeDateTime    Optional[time.Time]
	ExchangeTradeNumber Optional[uint64]
	BidNumber           Optional[int64]
	TransactionPrice    Optional[int64]
	TransactionVolume   Optional[int64]
	OpenInterest        Optional[int64]
}

// TradeDecoder decodes a stream of Trade records, owning the stateful delta
// decoders each optional field needs. One instance must be reused across an
// entire stream — the accumulators it carries are only meaningful in the
// order frames actually appear on the wire.
type TradeDecoder struct {
	exchangeDateTime    *delta.GrowingDateTime
	exchangeTradeNumber delta.Growing
	bidNumber           delta.Relative
	transactionPrice    delta.Relative
	openInterest        delta.Relative

	// dateTimeSeed seeds exchangeDateTime the first time the mask requires
	// it; GrowingDateTime must not be constructed until then; a stream
	// that never sets bit 2 never needs one.
	dateTimeSeed time.Time
}

// NewTradeDecoder returns a TradeDecoder whose exchange_date_time field (if
// ever present) is seeded from dateTimeSeed — normally the file header's
// record-start-time.
func NewTradeDecoder(dateTimeSeed time.Time) *TradeDecoder {
	return &TradeDecoder{dateTimeSeed: dateTimeSeed}
}

// Read decodes one Trade record from src.
func (d *TradeDecoder) Read(src primitive.Source) (Trade, error) {
	maskByte, err := src.ReadByte()
	if err != nil {
		return Trade{}, qsherr.ErrTruncated
	}

	direction := TradeDirection(maskByte & directionMask)
	if direction != DirectionUnknown && direction != DirectionAsk && direction != DirectionBid {
		return Trade{}, qsherr.ErrInvalidTradeDirection
	}

	trade := Trade{Direction: direction}

	if maskByte&bitExchangeDateTime != 0 {
		if d.exchangeDateTime == nil {
			d.exchangeDateTime = delta.NewGrowingDateTime(d.dateTimeSeed)
		}

		ts, err := d.exchangeDateTime.Read(src)
		if err != nil {
			return Trade{}, err
		}

		trade.ExchangeDateTime = Some(ts)
	}

	if maskByte&bitExchangeTradeNumber != 0 {
		v, err := d.exchangeTradeNumber.Read(src)
		if err != nil {
			return Trade{}, err
		}

		trade.ExchangeTradeNumber = Some(v)
	}

	if maskByte&bitBidNumber != 0 {
		v, err := d.bidNumber.Read(src)
		if err != nil {
			return Trade{}, err
		}

		trade.BidNumber = Some(v)
	}

	if maskByte&bitTransactionPrice != 0 {
		v, err := d.transactionPrice.Read(src)
		if err != nil {
			return Trade{}, err
		}

		trade.TransactionPrice = Some(v)
	}

	if maskByte&bitTransactionVolume != 0 {
		v, _, err := leb128.DecodeSignedFrom(src, transactionVolumeWidth)
		if err != nil {
			return Trade{}, err
		}

		trade.TransactionVolume = Some(v)
	}

	if maskByte&bitOpenInterest != 0 {
		v, err := d.openInterest.Read(src)
		if err != nil {
			return Trade{}, err
		}

		trade.OpenInterest = Some(v)
	}

	return trade, nil
}
