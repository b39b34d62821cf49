package calendar

import (
	"fmt"

	"stayops/internal/domain/shared/calday"
)

// PlacedSegment is a laid-out segment bound to its source entity. Level 0 is
// the top visual layer; overlapping entities are pushed to higher levels.
type PlacedSegment struct {
	Segment
	EntityID string
	Level    int
}

// Row is the layout result for one property across the visible window.
type Row struct {
	Segments []PlacedSegment
	Warnings []string
}

// BuildRow places every booking and blocked period of one property into
// non-overlapping visual segments. Entities are placed in input order, so
// when the data violates the no-overlap invariant the first-seen booking
// keeps visual priority and later ones are pushed a level down instead of
// crashing the render. Same-day turnover bookings do not overlap: the
// departing segment ends at the shared cell's midpoint and the arriving one
// starts there.
//
// Malformed intervals are skipped and reported as data-quality warnings.
func BuildRow(bookings []Booking, blocked []BlockedPeriod, w calday.Window, cellWidth float64) Row {
	var row Row
	placed := make([]Booking, 0, len(bookings))

	for _, b := range bookings {
		seg := LayoutBooking(b, w, cellWidth)
		if seg.Malformed {
			row.Warnings = append(row.Warnings, fmt.Sprintf("booking %s: invalid interval %s..%s", b.ID, b.CheckIn, b.CheckOut))
			continue
		}
		if seg.Empty() {
			continue
		}
		level := 0
		for _, prev := range placed {
			if b.OverlapsNights(prev) {
				level++
			}
		}
		if level > 0 {
			row.Warnings = append(row.Warnings, fmt.Sprintf("booking %s: overlaps an earlier booking", b.ID))
		}
		placed = append(placed, b)
		row.Segments = append(row.Segments, PlacedSegment{Segment: seg, EntityID: b.ID, Level: level})
	}

	for _, p := range blocked {
		seg := LayoutBlocked(p, w, cellWidth)
		if seg.Malformed {
			row.Warnings = append(row.Warnings, fmt.Sprintf("blocked period %s: invalid interval %s..%s", p.ID, p.Start, p.End))
			continue
		}
		if seg.Empty() {
			continue
		}
		row.Segments = append(row.Segments, PlacedSegment{Segment: seg, EntityID: p.ID})
	}
	return row
}
