package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/domain/shared/calday"
)

func sep(d int) calday.Day { return calday.Date(2026, time.September, d) }

func TestBuildRowSameDayTurnover(t *testing.T) {
	w := window(t, sep(1), sep(14))
	departing := Booking{ID: "a", CheckIn: sep(2), CheckOut: sep(6)}
	arriving := Booking{ID: "b", CheckIn: sep(6), CheckOut: sep(9)}

	row := BuildRow([]Booking{departing, arriving}, nil, w, cellWidth)
	require.Len(t, row.Segments, 2)
	assert.Empty(t, row.Warnings)

	a, b := row.Segments[0], row.Segments[1]
	assert.Equal(t, "a", a.EntityID)
	assert.Equal(t, "b", b.EntityID)
	assert.Equal(t, 0, a.Level)
	assert.Equal(t, 0, b.Level)
	assert.True(t, a.RightBevel)
	assert.True(t, b.LeftBevel)

	// Both live in the Sep 6 cell: A ends exactly where B starts, at the
	// cell midpoint.
	midpoint := float64(w.IndexOf(sep(6)))*cellWidth + cellWidth/2
	assert.Equal(t, midpoint, a.OffsetPx+a.WidthPx)
	assert.Equal(t, midpoint, b.OffsetPx)
}

func TestBuildRowOverlappingBookingsDoNotCrash(t *testing.T) {
	w := window(t, sep(1), sep(14))
	first := Booking{ID: "first", CheckIn: sep(2), CheckOut: sep(6)}
	second := Booking{ID: "second", CheckIn: sep(4), CheckOut: sep(8)}

	row := BuildRow([]Booking{first, second}, nil, w, cellWidth)
	require.Len(t, row.Segments, 2)

	// First-seen keeps the top layer; the conflicting booking is pushed
	// down and flagged.
	assert.Equal(t, 0, row.Segments[0].Level)
	assert.Equal(t, 1, row.Segments[1].Level)
	require.Len(t, row.Warnings, 1)
	assert.Contains(t, row.Warnings[0], "second")
}

func TestBuildRowOverlapOrderIsDeterministic(t *testing.T) {
	w := window(t, sep(1), sep(14))
	first := Booking{ID: "first", CheckIn: sep(2), CheckOut: sep(6)}
	second := Booking{ID: "second", CheckIn: sep(4), CheckOut: sep(8)}

	a := BuildRow([]Booking{first, second}, nil, w, cellWidth)
	b := BuildRow([]Booking{first, second}, nil, w, cellWidth)
	assert.Equal(t, a, b)
}

func TestBuildRowSkipsMalformedWithWarning(t *testing.T) {
	w := window(t, sep(1), sep(14))
	bad := Booking{ID: "bad", CheckIn: sep(6), CheckOut: sep(6)}
	good := Booking{ID: "good", CheckIn: sep(2), CheckOut: sep(4)}
	badBlock := BlockedPeriod{ID: "bad-blk", Start: sep(10), End: sep(8)}

	row := BuildRow([]Booking{bad, good}, []BlockedPeriod{badBlock}, w, cellWidth)
	require.Len(t, row.Segments, 1)
	assert.Equal(t, "good", row.Segments[0].EntityID)
	require.Len(t, row.Warnings, 2)
	assert.Contains(t, row.Warnings[0], "bad")
	assert.Contains(t, row.Warnings[1], "bad-blk")
}

func TestBuildRowSkipsEntitiesOutsideWindow(t *testing.T) {
	w := window(t, sep(1), sep(7))
	far := Booking{ID: "far", CheckIn: sep(20), CheckOut: sep(25)}

	row := BuildRow([]Booking{far}, nil, w, cellWidth)
	assert.Empty(t, row.Segments)
	assert.Empty(t, row.Warnings)
}

func TestBuildRowMixesBookingsAndBlocks(t *testing.T) {
	w := window(t, sep(1), sep(14))
	b := Booking{ID: "bkg", CheckIn: sep(2), CheckOut: sep(5)}
	blk := BlockedPeriod{ID: "blk", Start: sep(10), End: sep(12)}

	row := BuildRow([]Booking{b}, []BlockedPeriod{blk}, w, cellWidth)
	require.Len(t, row.Segments, 2)
	assert.Equal(t, SegmentBooking, row.Segments[0].Kind)
	assert.Equal(t, SegmentBlocked, row.Segments[1].Kind)
}
