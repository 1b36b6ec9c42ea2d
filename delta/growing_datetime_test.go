package delta

import (
	"bufio"
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dvoshchepynets/qsh/qshtime"
)

func encodeGrowingDateTimeStream(msDeltas ...int64) []byte {
	return encodeGrowingStream(msDeltas...)
}

func TestGrowingDateTime_FirstReadResetsBaseline(t *testing.T) {
	// An absolute tick-count-since-year-1 style first delta: about 2015
	// years' worth of milliseconds, which is always > 1 day.
	const hugeDeltaMs = int64(63_597_000_000_000) // ~2015 years in ms

	src := bufio.NewReader(bytes.NewReader(encodeGrowingDateTimeStream(hugeDeltaMs)))

	gdt := NewGrowingDateTime(time.Time{})
	got, err := gdt.Read(src)
	require.NoError(t, err)

	want := addMillis(qshtime.Epoch(), hugeDeltaMs)
	require.True(t, got.Equal(want))
	require.True(t, gdt.Start().Equal(want))
}

func TestGrowingDateTime_SmallDeltaAfterResetDoesNotDoubleCount(t *testing.T) {
	const hugeDeltaMs = int64(63_560_887_199_000)
	const smallDeltaMs = int64(8237)

	src := bufio.NewReader(bytes.NewReader(encodeGrowingDateTimeStream(hugeDeltaMs, smallDeltaMs)))

	gdt := NewGrowingDateTime(time.Time{})

	first, err := gdt.Read(src)
	require.NoError(t, err)

	second, err := gdt.Read(src)
	require.NoError(t, err)

	require.True(t, second.Equal(first.Add(time.Duration(smallDeltaMs)*time.Millisecond)),
		"a small delta right after a reset must be measured from the new baseline, not stacked onto the huge first value again")
}

func TestGrowingDateTime_SmallDeltaDoesNotResetBaseline(t *testing.T) {
	seed := time.Date(2015, time.March, 2, 6, 59, 50, 0, time.UTC)
	src := bufio.NewReader(bytes.NewReader(encodeGrowingDateTimeStream(9000))) // 9 seconds

	gdt := NewGrowingDateTime(seed)
	got, err := gdt.Read(src)
	require.NoError(t, err)

	require.True(t, got.Equal(seed.Add(9*time.Second)))
	require.True(t, gdt.Start().Equal(seed), "baseline must not move on a small delta")
}

func TestGrowingDateTime_TwoDayDeltaResetsBaseline(t *testing.T) {
	seed := time.Date(2015, time.March, 2, 0, 0, 0, 0, time.UTC)
	twoDaysMs := int64((48 * time.Hour).Milliseconds())

	src := bufio.NewReader(bytes.NewReader(encodeGrowingDateTimeStream(twoDaysMs)))

	gdt := NewGrowingDateTime(seed)
	got, err := gdt.Read(src)
	require.NoError(t, err)

	want := qshtime.Epoch().Add(48 * time.Hour)
	require.True(t, got.Equal(want))
}

func TestGrowingDateTime_OneDayDeltaDoesNotReset(t *testing.T) {
	seed := time.Date(2015, time.March, 2, 0, 0, 0, 0, time.UTC)
	oneDayPlusMs := int64((25 * time.Hour).Milliseconds()) // 1 day, 1 hour: days()==1, not >1

	src := bufio.NewReader(bytes.NewReader(encodeGrowingDateTimeStream(oneDayPlusMs)))

	gdt := NewGrowingDateTime(seed)
	got, err := gdt.Read(src)
	require.NoError(t, err)

	require.True(t, got.Equal(seed.Add(25*time.Hour)))
	require.True(t, gdt.Start().Equal(seed))
}

func TestGrowingDateTime_SmallDeltaAddsExactInstantAcrossDSTSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2016-03-13 00:30 EST, an hour and a half before that year's
	// spring-forward transition (02:00 EST -> 03:00 EDT).
	seed := time.Date(2016, time.March, 13, 0, 30, 0, 0, loc)
	oneDayPlusMs := int64((25 * time.Hour).Milliseconds()) // days()==1, not >1: small-delta path

	src := bufio.NewReader(bytes.NewReader(encodeGrowingDateTimeStream(oneDayPlusMs)))

	gdt := NewGrowingDateTime(seed)
	got, err := gdt.Read(src)
	require.NoError(t, err)

	want := seed.Add(25 * time.Hour)
	require.True(t, got.Equal(want),
		"a 25h delta must add the exact instant even when the baseline's zone loses an hour to DST in that span; got %v want %v", got, want)
}

func TestNewGrowingDateTime_ZeroSeedUsesEpoch(t *testing.T) {
	gdt := NewGrowingDateTime(time.Time{})
	require.True(t, gdt.Start().Equal(qshtime.Epoch()))
}
