package qsh

import (
	"time"

	"github.com/dvoshchepynets/qsh/record"
)

// FrameKind tags which payload a Frame carries, mirroring the stream
// descriptor's kind at the time the frame was read.
type FrameKind uint8

const (
	FrameTrade FrameKind = iota
	FrameStock
)

func (k FrameKind) String() string {
	switch k {
	case FrameTrade:
		return "Trade"
	case FrameStock:
		return "Stock"
	default:
		return "Unknown"
	}
}

// Frame is one decoded record: a timestamp plus exactly one of Trade or
// Stock, selected by Kind.
type Frame struct {
	Timestamp time.Time
	Kind      FrameKind
	Trade     record.Trade
	Stock     record.Stock
}
