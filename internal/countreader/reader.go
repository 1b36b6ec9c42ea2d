// Package countreader wraps an io.Reader with a running byte-offset count,
// pulled one byte at a time so the offset always matches the last value a
// caller actually consumed — a buffered reader's read-ahead would make the
// offset lie.
package countreader

import "io"

// Reader tracks how many bytes have been pulled from the wrapped source.
// It supports peeking a single byte ahead — just enough for the parser to
// tell a clean end-of-file at a frame boundary from a frame truncated
// mid-value — without bufio's larger read-ahead skewing Offset.
type Reader struct {
	r       io.Reader
	offset  int64
	pending *byte
}

// New wraps r, starting the offset at 0.
func New(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read implements io.Reader.
func (c *Reader) Read(p []byte) (int, error) {
	if c.pending != nil && len(p) > 0 {
		p[0] = *c.pending
		c.pending = nil
		c.offset++

		return 1, nil
	}

	n, err := c.r.Read(p)
	c.offset += int64(n)

	return n, err
}

// ReadByte implements io.ByteReader, reading exactly one byte so Offset
// never outruns what the caller has consumed.
func (c *Reader) ReadByte() (byte, error) {
	if c.pending != nil {
		b := *c.pending
		c.pending = nil
		c.offset++

		return b, nil
	}

	var b [1]byte

	n, err := c.r.Read(b[:])
	c.offset += int64(n)

	if n == 0 {
		if err == nil {
			err = io.EOF
		}

		return 0, err
	}

	return b[0], nil
}

// PeekByte returns the next byte without consuming it — a second call, or
// a subsequent Read/ReadByte, returns the same byte until it's consumed.
func (c *Reader) PeekByte() (byte, error) {
	if c.pending != nil {
		return *c.pending, nil
	}

	var b [1]byte

	n, err := c.r.Read(b[:])
	if n == 0 {
		if err == nil {
			err = io.EOF
		}

		return 0, err
	}

	c.pending = &b[0]

	return b[0], nil
}

// Offset returns the number of bytes consumed so far.
func (c *Reader) Offset() int64 {
	return c.offset
}
