package leb128

import (
	"io"

	"github.com/dvoshchepynets/qsh/qsherr"
)

// ByteSource is the minimal pull-style input the streaming decoders need:
// one byte at a time, with io.EOF signaling exhaustion. *bufio.Reader and
// bytes.Reader both satisfy it.
type ByteSource interface {
	io.ByteReader
}

// EncodeUnsignedWidth encodes n as ULEB128, appended to dst, failing with
// qsherr.ErrOverflow if n's bit length exceeds 8*maxWidth, matching the
// original QSH parser's overflow check. Because each encoded byte carries
// only 7 payload bits, a value that passes this check can still encode to
// more than maxWidth bytes.
func EncodeUnsignedWidth(dst []byte, n uint64, maxWidth int) ([]byte, error) {
	if bitLen64(n) > 8*maxWidth {
		return dst, qsherr.ErrOverflow
	}

	return EncodeUnsigned(dst, n), nil
}

// EncodeSignedWidth encodes n as SLEB128, appended to dst, failing with
// qsherr.ErrOverflow under the same rule as EncodeUnsignedWidth (applied to
// the two's-complement magnitude of n).
func EncodeSignedWidth(dst []byte, n int64, maxWidth int) ([]byte, error) {
	if signedBitLen64(n) > 8*maxWidth {
		return dst, qsherr.ErrOverflow
	}

	return EncodeSigned(dst, n), nil
}

func bitLen64(n uint64) int {
	length := 0
	for n != 0 {
		length++
		n >>= 1
	}

	return length
}

// signedBitLen64 returns the number of bits needed to represent n, treating
// negative n the same way Python's int.bit_length does for the equivalent
// magnitude the original parser compared against (abs(n)-1 for negative n
// is not what CPython does; CPython's bit_length ignores sign entirely and
// operates on the magnitude). We mirror that: bit length of |n|.
func signedBitLen64(n int64) int {
	if n < 0 {
		n = -n
	}

	return bitLen64(uint64(n))
}

// EncodeUnsigned appends the ULEB128 encoding of n to dst and returns the
// extended slice. It emits the minimal number of 7-bit groups, little-endian
// by group, with the continuation bit set on every byte but the last.
func EncodeUnsigned(dst []byte, n uint64) []byte {
	for {
		b := byte(n & 0x7F)
		n >>= 7
		if n != 0 {
			dst = append(dst, b|0x80)
			continue
		}

		return append(dst, b)
	}
}

// EncodeSigned appends the SLEB128 encoding of n to dst and returns the
// extended slice. Encoding continues until the last emitted byte's bit 6
// (the sign bit of its 7-bit payload) agrees with the sign of the remaining
// value, per the standard LEB128 termination rule.
func EncodeSigned(dst []byte, n int64) []byte {
	more := true
	for more {
		b := byte(n & 0x7F)
		n >>= 7

		// n>>7 on a signed value is an arithmetic shift, so a fully
		// sign-extended remainder combined with a payload bit that already
		// matches the sign means we're done.
		if (n == 0 && b&0x40 == 0) || (n == -1 && b&0x40 != 0) {
			more = false
		} else {
			b |= 0x80
		}

		dst = append(dst, b)
	}

	return dst
}

// DecodeUnsigned decodes a ULEB128 value from the start of buf.
//
// maxWidth bounds the number of encoded bytes consumed (the B from the wire
// format); exceeding it without terminating fails with qsherr.ErrOverflow.
// Running out of buf with the continuation bit still set fails with
// qsherr.ErrTruncated.
func DecodeUnsigned(buf []byte, maxWidth int) (value uint64, consumed int, err error) {
	var shift uint
	for i := 0; i < maxWidth; i++ {
		if i >= len(buf) {
			return 0, i, qsherr.ErrTruncated
		}

		b := buf[i]
		value |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return value, i + 1, nil
		}
		shift += 7
	}

	return 0, maxWidth, qsherr.ErrOverflow
}

// DecodeSigned decodes a SLEB128 value from the start of buf, sign-extending
// the result once the terminating byte is reached.
//
// maxWidth and the error conditions match DecodeUnsigned.
func DecodeSigned(buf []byte, maxWidth int) (value int64, consumed int, err error) {
	var shift uint
	var b byte
	for i := 0; i < maxWidth; i++ {
		if i >= len(buf) {
			return 0, i, qsherr.ErrTruncated
		}

		b = buf[i]
		value |= int64(b&0x7F) << shift
		shift += 7

		if b&0x80 == 0 {
			if shift < 64 && b&0x40 != 0 {
				value |= -1 << shift
			}

			return value, i + 1, nil
		}
	}

	return 0, maxWidth, qsherr.ErrOverflow
}

// DecodeUnsignedFrom decodes a ULEB128 value one byte at a time from src,
// for callers that only have a streaming reader rather than a buffered
// slice. Semantics match DecodeUnsigned.
func DecodeUnsignedFrom(src ByteSource, maxWidth int) (value uint64, consumed int, err error) {
	var shift uint
	for i := 0; i < maxWidth; i++ {
		b, rerr := src.ReadByte()
		if rerr != nil {
			return 0, i, qsherr.ErrTruncated
		}

		value |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return value, i + 1, nil
		}
		shift += 7
	}

	return 0, maxWidth, qsherr.ErrOverflow
}

// DecodeSignedFrom decodes a SLEB128 value one byte at a time from src.
// Semantics match DecodeSigned.
func DecodeSignedFrom(src ByteSource, maxWidth int) (value int64, consumed int, err error) {
	var shift uint
	var b byte
	for i := 0; i < maxWidth; i++ {
		rb, rerr := src.ReadByte()
		if rerr != nil {
			return 0, i, qsherr.ErrTruncated
		}

		b = rb
		value |= int64(b&0x7F) << shift
		shift += 7

		if b&0x80 == 0 {
			if shift < 64 && b&0x40 != 0 {
				value |= -1 << shift
			}

			return value, i + 1, nil
		}
	}

	return 0, maxWidth, qsherr.ErrOverflow
}
