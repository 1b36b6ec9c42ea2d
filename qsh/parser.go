package qsh

import (
	"errors"
	"io"
	"iter"
	"os"

	"github.com/dvoshchepynets/qsh/delta"
	"github.com/dvoshchepynets/qsh/internal/countreader"
	"github.com/dvoshchepynets/qsh/internal/options"
	"github.com/dvoshchepynets/qsh/primitive"
	"github.com/dvoshchepynets/qsh/qsherr"
	"github.com/dvoshchepynets/qsh/record"
)

type parserState int

const (
	stateInitial parserState = iota
	stateHeaderRead
	stateStreamDescriptorRead
	stateFraming
	stateClosed
	stateError
)

// Parser decodes one QSH v4 file, start to finish, in a single pass. It is
// not safe for concurrent use, and not reusable once exhausted or closed.
type Parser struct {
	name   string
	closer io.Closer
	src    *countreader.Reader
	reader *primitive.Reader

	state  parserState
	header FileHeader
	stream StreamDescriptor

	dateTime *delta.GrowingDateTime
	tradeDec *record.TradeDecoder
	stockDec *record.StockDecoder

	cfg *parserConfig
	err error
}

// Open opens the file at path and parses its header and stream descriptor.
func Open(path string, opts ...Option) (*Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, qsherr.ErrFileNotFound
		}

		return nil, err
	}

	p, err := NewParser(path, f, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}

	return p, nil
}

// NewParser builds a Parser over an already-open reader, parsing the header
// and stream descriptor immediately. If r implements io.Closer, Close on the
// returned Parser closes it too — including when NewParser itself fails.
func NewParser(name string, r io.Reader, opts ...Option) (*Parser, error) {
	cfg := newParserConfig()
	options.Apply(cfg, opts...)

	closer, _ := r.(io.Closer)
	cr := countreader.New(r)

	p := &Parser{
		name:   name,
		closer: closer,
		src:    cr,
		reader: primitive.NewReader(cr),
		cfg:    cfg,
		state:  stateInitial,
	}

	if err := p.readHeader(); err != nil {
		p.fail(err)
		p.Close()
		return nil, err
	}

	if err := p.readStreamDescriptor(); err != nil {
		p.fail(err)
		p.Close()
		return nil, err
	}

	return p, nil
}

// Header returns the parsed file header.
func (p *Parser) Header() FileHeader {
	return p.header
}

// Stream returns the parsed (sole) stream descriptor.
func (p *Parser) Stream() StreamDescriptor {
	return p.stream
}

// Close releases the underlying file handle, if any. Safe to call more than
// once.
func (p *Parser) Close() error {
	if p.state != stateClosed {
		p.state = stateClosed
	}

	if p.closer == nil {
		return nil
	}

	closer := p.closer
	p.closer = nil

	return closer.Close()
}

func (p *Parser) fail(err error) {
	p.state = stateError
	p.err = err
}

func (p *Parser) at(err error) error {
	return qsherr.At(p.name, p.src.Offset(), err)
}

func (p *Parser) readHeader() error {
	sig, err := p.reader.Bytes(len(signature))
	if err != nil {
		return p.at(qsherr.ErrBadSignature)
	}

	if string(sig) != signature {
		return p.at(qsherr.ErrBadSignature)
	}

	version, err := p.reader.Byte()
	if err != nil {
		return p.at(err)
	}

	if version != supportedVersion {
		return p.at(qsherr.ErrUnsupportedVersion)
	}

	appName, err := p.reader.String()
	if err != nil {
		return p.at(err)
	}

	userComment, err := p.reader.String()
	if err != nil {
		return p.at(err)
	}

	ticks, err := p.reader.DateTime()
	if err != nil {
		return p.at(err)
	}

	streamCount, err := p.reader.Byte()
	if err != nil {
		return p.at(err)
	}

	if streamCount != 1 {
		return p.at(qsherr.ErrMultiStreamUnsupported)
	}

	p.header = FileHeader{
		Version:         version,
		AppName:         appName,
		UserComment:     userComment,
		RecordStartTime: p.cfg.presenter.Present(ticks.UTC()),
		StreamCount:     streamCount,
	}
	p.state = stateHeaderRead

	return nil
}

func (p *Parser) readStreamDescriptor() error {
	kindByte, err := p.reader.Byte()
	if err != nil {
		return p.at(err)
	}

	kind := StreamKind(kindByte)
	if !kind.supported() {
		return p.at(qsherr.ErrUnsupportedStreamKind)
	}

	instrument, err := p.reader.String()
	if err != nil {
		return p.at(err)
	}

	p.stream = StreamDescriptor{Kind: kind, Instrument: instrument}
	p.dateTime = delta.NewGrowingDateTime(p.header.RecordStartTime)

	switch kind {
	case StreamStock:
		p.stockDec = &record.StockDecoder{}
	case StreamDeals:
		p.tradeDec = record.NewTradeDecoder(p.header.RecordStartTime)
	}

	p.state = stateStreamDescriptorRead

	return nil
}

// Frames returns an iterator over the file's remaining frames. Clean
// end-of-file at a frame boundary ends iteration without an error; any
// other failure is yielded as the iterator's final value, and a later call
// to Frames yields that same error again as its only value.
func (p *Parser) Frames() iter.Seq2[Frame, error] {
	return func(yield func(Frame, error) bool) {
		for {
			frame, err := p.readFrame()
			if err != nil {
				if errors.Is(err, io.EOF) {
					p.state = stateClosed
					return
				}

				p.fail(err)
				yield(Frame{}, err)

				return
			}

			if !yield(frame, nil) {
				return
			}
		}
	}
}

func (p *Parser) readFrame() (Frame, error) {
	switch p.state {
	case stateStreamDescriptorRead, stateFraming:
		// proceed
	case stateError:
		return Frame{}, p.err
	case stateClosed:
		return Frame{}, qsherr.ErrParserClosed
	default:
		return Frame{}, qsherr.ErrNotInitialized
	}

	if _, err := p.src.PeekByte(); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}

		return Frame{}, p.at(qsherr.ErrTruncated)
	}

	ts, err := p.dateTime.Read(p.src)
	if err != nil {
		return Frame{}, p.at(err)
	}

	ts = p.cfg.presenter.Present(ts)

	frame := Frame{Timestamp: ts}

	switch p.stream.Kind {
	case StreamDeals:
		trade, err := p.tradeDec.Read(p.src)
		if err != nil {
			return Frame{}, p.at(err)
		}

		frame.Kind = FrameTrade
		frame.Trade = trade
	case StreamStock:
		stock, err := p.stockDec.Read(p.src, ts)
		if err != nil {
			return Frame{}, p.at(err)
		}

		frame.Kind = FrameStock
		frame.Stock = stock
	}

	p.state = stateFraming

	return frame, nil
}
