package primitive

import (
	"io"
	"math"
	"unicode/utf8"

	"github.com/dvoshchepynets/qsh/endian"
	"github.com/dvoshchepynets/qsh/leb128"
	"github.com/dvoshchepynets/qsh/qsherr"
	"github.com/dvoshchepynets/qsh/qshtime"
)

// stringLengthMaxWidth bounds the ULEB128 length prefix on strings: QSH
// string payloads are never large enough to need more than 4 encoded bytes
// (28 bits), and capping here turns a corrupt length prefix into a bounded
// ErrOverflow instead of an attempted multi-gigabyte allocation.
const stringLengthMaxWidth = 4

// Source is the input a Reader consumes from: one byte at a time (for
// ULEB128 string-length prefixes) or in fixed-size chunks (for everything
// else).
type Source interface {
	leb128.ByteSource
	io.Reader
}

// Reader decodes QSH's fixed-width and length-prefixed primitive values
// from a Source. It holds no state of its own beyond a reusable scratch
// buffer; all positional bookkeeping belongs to the caller.
type Reader struct {
	src    Source
	engine endian.Engine
	scratch [8]byte
}

// NewReader returns a Reader over src using QSH's fixed little-endian byte
// order.
func NewReader(src Source) *Reader {
	return &Reader{src: src, engine: endian.Little}
}

func (r *Reader) fill(n int) ([]byte, error) {
	buf := r.scratch[:n]
	if _, err := io.ReadFull(r.src, buf); err != nil {
		return nil, qsherr.ErrTruncated
	}

	return buf, nil
}

// Byte reads a single unsigned byte.
func (r *Reader) Byte() (byte, error) {
	b, err := r.src.ReadByte()
	if err != nil {
		return 0, qsherr.ErrTruncated
	}

	return b, nil
}

// Bytes reads exactly n raw bytes and returns a freshly allocated copy.
func (r *Reader) Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.src, buf); err != nil {
		return nil, qsherr.ErrTruncated
	}

	return buf, nil
}

// Uint16 reads a little-endian uint16.
func (r *Reader) Uint16() (uint16, error) {
	buf, err := r.fill(2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(buf), nil
}

// Uint32 reads a little-endian uint32.
func (r *Reader) Uint32() (uint32, error) {
	buf, err := r.fill(4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(buf), nil
}

// Int64 reads a little-endian, two's-complement int64.
func (r *Reader) Int64() (int64, error) {
	buf, err := r.fill(8)
	if err != nil {
		return 0, err
	}

	return int64(r.engine.Uint64(buf)), nil
}

// Double reads a little-endian IEEE-754 binary64.
func (r *Reader) Double() (float64, error) {
	buf, err := r.fill(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(r.engine.Uint64(buf)), nil
}

// DateTime reads an int64 .NET-ticks value and returns it as qshtime.Ticks;
// Ticks.UTC converts it to a time.Time with microsecond precision.
func (r *Reader) DateTime() (qshtime.Ticks, error) {
	ticks, err := r.Int64()
	if err != nil {
		return 0, err
	}

	return qshtime.Ticks(ticks), nil
}

// String reads a ULEB128 length prefix followed by that many bytes of
// UTF-8 text.
func (r *Reader) String() (string, error) {
	length, _, err := leb128.DecodeUnsignedFrom(r.src, stringLengthMaxWidth)
	if err != nil {
		return "", err
	}

	raw, err := r.Bytes(int(length))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(raw) {
		return "", qsherr.ErrInvalidUTF8
	}

	return string(raw), nil
}
