package qsh

// StreamKind is the one-byte discriminator attached to each embedded
// stream. The format defines more kinds than this parser supports; any
// kind outside StreamStock/StreamDeals is rejected.
type StreamKind uint8

const (
	StreamStock StreamKind = 0x10
	StreamDeals StreamKind = 0x20

	// Kinds the wire format defines but this parser does not decode.
	streamOrders   StreamKind = 0x30
	streamTrades   StreamKind = 0x40
	streamMessages StreamKind = 0x50
	streamAuxInfo  StreamKind = 0x60
	streamOrderLog StreamKind = 0x70
)

func (k StreamKind) String() string {
	switch k {
	case StreamStock:
		return "Stock"
	case StreamDeals:
		return "Deals"
	case streamOrders:
		return "Orders"
	case streamTrades:
		return "Trades"
	case streamMessages:
		return "Messages"
	case streamAuxInfo:
		return "AuxInfo"
	case streamOrderLog:
		return "OrdLog"
	default:
		return "Unknown"
	}
}

func (k StreamKind) supported() bool {
	return k == StreamStock || k == StreamDeals
}

// StreamDescriptor identifies the single embedded stream a QSH v4 file
// carries (multi-stream files are rejected before this is read).
type StreamDescriptor struct {
	Kind       StreamKind
	Instrument string
}
