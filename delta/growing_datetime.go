package delta

import (
	"time"

	"github.com/dvoshchepynets/qsh/leb128"
	"github.com/dvoshchepynets/qsh/qshtime"
)

// oneDayMs is the unit GrowingDateTime's baseline-reset rule is measured in.
const oneDayMs = int64(24 * time.Hour / time.Millisecond)

// msPerDay is used to split a millisecond count into whole days plus a
// sub-day remainder, so adding it to a time.Time never has to build a
// time.Duration wide enough to overflow (a multi-century millisecond count,
// as the very first GrowingDateTime read tends to be, does not fit in an
// int64 nanosecond Duration).
const msPerDay = 24 * 60 * 60 * 1000

// secondsPerDay converts the whole-day component split off by addMillis into
// seconds for exact Unix-time arithmetic.
const secondsPerDay = 24 * 60 * 60

// GrowingDateTime reinterprets a Growing value as a millisecond delta
// against a wall-clock baseline.
//
// The first Growing value in a stream is, empirically, an absolute
// millisecond count since year 1 rather than a small delta — because of
// this, whenever the decoded delta's whole-day count exceeds one (two days
// or more; a 25-hour delta does not qualify) the baseline is reset to epoch+delta instead of being added to the previous
// baseline, and the internal Growing accumulator resets alongside it so the
// next frame's value is again a small delta relative to the new baseline.
// Every subsequent (small) delta is added to the baseline without moving
// it. This rule is preserved exactly as observed in QSH files; it is not a
// documented part of the wire format.
type GrowingDateTime struct {
	growing Growing
	start   time.Time
}

// NewGrowingDateTime returns a GrowingDateTime seeded with start — normally
// the file header's record-start-time, or the epoch if the header carries
// none.
func NewGrowingDateTime(start time.Time) *GrowingDateTime {
	if start.IsZero() {
		start = qshtime.Epoch()
	}

	return &GrowingDateTime{start: start}
}

// Read consumes one Growing-encoded millisecond delta from src and returns
// the resulting timestamp.
func (g *GrowingDateTime) Read(src leb128.ByteSource) (time.Time, error) {
	u, err := g.growing.Read(src)
	if err != nil {
		return time.Time{}, err
	}

	ms := int64(u)

	if ms/oneDayMs > 1 {
		g.start = addMillis(qshtime.Epoch(), ms)
		g.growing = Growing{}

		return g.start, nil
	}

	return addMillis(g.start, ms), nil
}

// Start returns the current baseline without consuming input.
func (g *GrowingDateTime) Start() time.Time {
	return g.start
}

// addMillis adds an arbitrarily large millisecond count to t without
// overflowing time.Duration, by walking whole days through Unix-second
// arithmetic and handling only the sub-day remainder as a Duration. This
// adds an exact instant rather than a calendar day count: AddDate would
// instead preserve t's wall-clock fields across the jump, which is wrong by
// the DST offset whenever t's zone observes daylight saving and the span
// crosses a transition.
func addMillis(t time.Time, ms int64) time.Time {
	days := ms / msPerDay
	remainder := ms % msPerDay

	shifted := time.Unix(t.Unix()+days*secondsPerDay, int64(t.Nanosecond())).In(t.Location())

	return shifted.Add(time.Duration(remainder) * time.Millisecond)
}
