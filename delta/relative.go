package delta

import "github.com/dvoshchepynets/qsh/leb128"

// relativeSignedWidth bounds a single SLEB128 delta at 10 encoded bytes (70
// payload bits), comfortably covering any int64 value with room to spare.
const relativeSignedWidth = 10

// Relative decodes a stream of SLEB128 deltas into a running signed sum.
// The zero value starts at 0, matching the format's initial accumulator.
type Relative struct {
	last int64
}

// Read consumes one SLEB128 delta from src and returns the updated running
// sum.
func (r *Relative) Read(src leb128.ByteSource) (int64, error) {
	d, _, err := leb128.DecodeSignedFrom(src, relativeSignedWidth)
	if err != nil {
		return 0, err
	}

	r.last += d

	return r.last, nil
}

// Last returns the current accumulator without consuming input.
func (r *Relative) Last() int64 {
	return r.last
}
