package delta

import "github.com/dvoshchepynets/qsh/leb128"

const (
	// growingUnsignedWidth bounds the ULEB128 half of a Growing read at 4
	// encoded bytes (28 payload bits) — enough to represent the escape
	// sentinel itself without being able to silently absorb a corrupt,
	// much larger value as data.
	growingUnsignedWidth = 4

	// growingEscapeSignedWidth bounds the SLEB128 delta read after the
	// escape sentinel, matching Relative's width.
	growingEscapeSignedWidth = 10

	// growingEscapeSentinel is the one ULEB128 value that means "the real
	// delta follows as a separate SLEB128 value", rather than being the
	// delta itself. It is exactly the largest value representable in the
	// 28 payload bits growingUnsignedWidth allows (0x0FFF_FFFF).
	//
	// A wire value of exactly growingEscapeSentinel-1 (268,435,454) is a
	// valid, non-escaping delta, not a near-miss of the sentinel; it is
	// reported to the hook installed with Growing.SetDebugHook rather than
	// treated as an error, so unusual-but-legal files can be flagged for
	// manual review without failing to parse.
	growingEscapeSentinel = 268_435_455
)

// Growing decodes a stream of ULEB128 deltas into a running unsigned sum,
// with an SLEB128 escape path for deltas that are negative or too large to
// fit the ULEB128 half's width. The zero value starts at 0.
type Growing struct {
	last uint64
	hook func(observed uint64)
}

// SetDebugHook installs a callback invoked whenever Read observes the wire
// value one below the escape sentinel (268,435,454) — a legal but unusual
// value worth tracking empirically, per the format's documented ambiguity
// around that boundary. A nil hook (the default) disables tracking.
func (g *Growing) SetDebugHook(hook func(observed uint64)) {
	g.hook = hook
}

// Read consumes one Growing-encoded delta from src and returns the updated
// running sum.
func (g *Growing) Read(src leb128.ByteSource) (uint64, error) {
	u, _, err := leb128.DecodeUnsignedFrom(src, growingUnsignedWidth)
	if err != nil {
		return 0, err
	}

	var delta int64
	switch {
	case u == growingEscapeSentinel:
		delta, _, err = leb128.DecodeSignedFrom(src, growingEscapeSignedWidth)
		if err != nil {
			return 0, err
		}
	default:
		if u == growingEscapeSentinel-1 && g.hook != nil {
			g.hook(u)
		}
		delta = int64(u) //nolint:gosec // u < growingEscapeSentinel, well within int64 range
	}

	g.last += uint64(delta)

	return g.last, nil
}

// Last returns the current accumulator without consuming input.
func (g *Growing) Last() uint64 {
	return g.last
}
