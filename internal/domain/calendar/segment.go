package calendar

import "stayops/internal/domain/shared/calday"

// MinSegmentWidthPx keeps any visible segment from collapsing below a
// clickable size.
const MinSegmentWidthPx = 20.0

type SegmentKind string

const (
	SegmentBooking SegmentKind = "booking"
	SegmentBlocked SegmentKind = "blocked"
)

// Segment is the derived view-model for one booking or blocked period inside
// a visible window. A truncated edge means the real interval continues off
// screen; a bevel marks a true check-in or check-out boundary and is never
// set on a truncated edge.
type Segment struct {
	Kind           SegmentKind
	VisibleDays    int
	StartTruncated bool
	EndTruncated   bool
	LeftBevel      bool
	RightBevel     bool
	OffsetPx       float64
	WidthPx        float64
	Malformed      bool
}

// Empty reports whether the segment renders nothing.
func (s Segment) Empty() bool { return s.VisibleDays == 0 }

// Layout computes the segment for a half-open interval [start, endExclusive)
// against the window. Booking checkout days are split at the cell midpoint:
// a true check-in starts at the midpoint of its cell and a true check-out
// ends at the midpoint of the checkout cell, so a departure and an arrival
// can share one day cell. Blocked periods use full-cell geometry.
//
// Malformed intervals (start >= endExclusive) yield a zero-width segment
// flagged for the caller to surface; the grid render must not break.
func Layout(kind SegmentKind, start, endExclusive calday.Day, w calday.Window, cellWidth float64) Segment {
	if start >= endExclusive {
		return Segment{Kind: kind, Malformed: true}
	}

	winEndEx := w.End + 1
	visStart := start
	if visStart < w.Start {
		visStart = w.Start
	}
	visEndEx := endExclusive
	if visEndEx > winEndEx {
		visEndEx = winEndEx
	}
	if visStart >= visEndEx {
		// Entirely outside the window.
		return Segment{Kind: kind}
	}

	seg := Segment{
		Kind:           kind,
		VisibleDays:    calday.DaysBetween(visStart, visEndEx),
		StartTruncated: start < w.Start,
		EndTruncated:   endExclusive > winEndEx,
	}
	seg.LeftBevel = visStart == start && !seg.StartTruncated
	seg.RightBevel = visEndEx == endExclusive && !seg.EndTruncated

	seg.OffsetPx = float64(w.IndexOf(visStart)) * cellWidth
	seg.WidthPx = float64(seg.VisibleDays) * cellWidth
	if kind == SegmentBooking {
		if seg.LeftBevel {
			seg.OffsetPx += cellWidth / 2
			seg.WidthPx -= cellWidth / 2
		}
		if seg.RightBevel {
			// Extend into the first half of the checkout day's cell.
			seg.WidthPx += cellWidth / 2
		}
	}

	// Never draw past the grid's right edge (a checkout day can sit just
	// outside the window).
	gridWidth := float64(w.Days()) * cellWidth
	if seg.OffsetPx+seg.WidthPx > gridWidth {
		seg.WidthPx = gridWidth - seg.OffsetPx
	}
	if seg.WidthPx < MinSegmentWidthPx {
		seg.WidthPx = MinSegmentWidthPx
	}
	return seg
}

// LayoutBooking lays out a booking's half-open [CheckIn, CheckOut) interval.
func LayoutBooking(b Booking, w calday.Window, cellWidth float64) Segment {
	return Layout(SegmentBooking, b.CheckIn, b.CheckOut, w, cellWidth)
}

// LayoutBlocked lays out a blocked period, inclusive on both ends.
func LayoutBlocked(p BlockedPeriod, w calday.Window, cellWidth float64) Segment {
	return Layout(SegmentBlocked, p.Start, p.End+1, w, cellWidth)
}
