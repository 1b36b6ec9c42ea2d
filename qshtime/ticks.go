// Package qshtime converts the .NET-Ticks timestamps QSH embeds on the wire
// into Go time.Time values, and presents the file header's start-of-recording
// timestamp in a configurable local wall-clock zone.
package qshtime

import "time"

// ticksPerMicrosecond is the number of 100ns .NET ticks in one microsecond.
const ticksPerMicrosecond = 10

// epoch is 0001-01-01T00:00:00 UTC, the origin .NET Ticks (and this format's
// GrowingDateTime baseline) counts from.
var epoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// Ticks is a 64-bit signed count of 100-nanosecond intervals since
// 0001-01-01 00:00:00 UTC — equivalent to .NET's DateTime.Ticks.
type Ticks int64

// UTC converts t to a calendar timestamp with microsecond precision
// (ticks / 10 microseconds past the epoch).
func (t Ticks) UTC() time.Time {
	us := int64(t) / ticksPerMicrosecond

	return time.Unix(epoch.Unix()+us/1_000_000, (us%1_000_000)*1000).UTC()
}

// Epoch returns 0001-01-01T00:00:00 UTC, the reference point every QSH
// timestamp (ticks and GrowingDateTime deltas alike) is ultimately computed
// from.
func Epoch() time.Time {
	return epoch
}

// DefaultLocationName is the wall-clock zone QSH files are presented in when
// no explicit location is configured.
const DefaultLocationName = "Europe/Moscow"

// Presenter converts an already-decoded UTC time.Time into a configured
// local wall-clock zone for display, without altering what instant in time
// it represents.
type Presenter struct {
	loc *time.Location
}

// NewPresenter returns a Presenter that presents times in loc. A nil loc is
// treated as time.UTC.
func NewPresenter(loc *time.Location) Presenter {
	if loc == nil {
		loc = time.UTC
	}

	return Presenter{loc: loc}
}

// DefaultPresenter returns a Presenter for DefaultLocationName, falling back
// to UTC if the local tzdata database does not have that zone.
func DefaultPresenter() Presenter {
	loc, err := time.LoadLocation(DefaultLocationName)
	if err != nil {
		loc = time.UTC
	}

	return NewPresenter(loc)
}

// Present returns t with its wall-clock fields expressed in the configured
// zone; the instant in time (and any comparison/Equal/Sub against it) is
// unchanged.
func (p Presenter) Present(t time.Time) time.Time {
	return t.In(p.loc)
}

// Location returns the presenter's configured zone.
func (p Presenter) Location() *time.Location {
	return p.loc
}
