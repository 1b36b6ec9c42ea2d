// Package qsherr defines the sentinel error kinds returned by the qsh
// decoding pipeline and the positional wrapper attached to them.
package qsherr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Check with errors.Is; every error the decoder
// surfaces across a file boundary wraps one of these in a PositionError.
var (
	ErrFileNotFound           = errors.New("qsh: file not found")
	ErrBadSignature           = errors.New("qsh: bad file signature")
	ErrUnsupportedVersion     = errors.New("qsh: unsupported format version")
	ErrMultiStreamUnsupported = errors.New("qsh: multi-stream files are not supported")
	ErrUnsupportedStreamKind  = errors.New("qsh: unsupported stream kind")
	ErrInvalidTradeDirection  = errors.New("qsh: invalid trade direction")
	ErrInvalidFrameCount      = errors.New("qsh: invalid frame count")
	ErrOverflow               = errors.New("qsh: leb128 value exceeds maximum width")
	ErrTruncated              = errors.New("qsh: source ended before value was fully read")
	ErrInvalidUTF8            = errors.New("qsh: string payload is not valid UTF-8")
	ErrNotInitialized         = errors.New("qsh: frame read attempted before stream descriptor was parsed")
	ErrParserClosed           = errors.New("qsh: parser is closed")
)

// PositionError attaches the source file name and the byte offset at which
// an error occurred, giving callers enough context to locate the bad byte
// without the core needing to format a human message itself.
type PositionError struct {
	File   string
	Offset int64
	Err    error
}

func (e *PositionError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("qsh: offset %d: %v", e.Offset, e.Err)
	}

	return fmt.Sprintf("qsh: %s: offset %d: %v", e.File, e.Offset, e.Err)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

// At wraps err with the given file name and byte offset. It returns nil if
// err is nil, so call sites can write `return qsherr.At(name, off, err)`
// unconditionally.
func At(file string, offset int64, err error) error {
	if err == nil {
		return nil
	}

	var pe *PositionError
	if errors.As(err, &pe) {
		return err
	}

	return &PositionError{File: file, Offset: offset, Err: err}
}
