package dto

import (
	"stayops/internal/domain/calendar"
)

type DayCell struct {
	Date       string  `json:"date"`
	FinalPrice float64 `json:"final_price"`
	MinStay    int     `json:"min_stay"`
	IsBlocked  bool    `json:"is_blocked"`
}

type Segment struct {
	EntityID       string  `json:"entity_id"`
	Kind           string  `json:"kind"`
	Level          int     `json:"level"`
	VisibleDays    int     `json:"visible_days"`
	StartTruncated bool    `json:"start_truncated"`
	EndTruncated   bool    `json:"end_truncated"`
	LeftBevel      bool    `json:"left_bevel"`
	RightBevel     bool    `json:"right_bevel"`
	OffsetPx       float64 `json:"offset_px"`
	WidthPx        float64 `json:"width_px"`
}

type CalendarRow struct {
	PropertyID string    `json:"property_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Days       []DayCell `json:"days"`
	Segments   []Segment `json:"segments"`
	Warnings   []string  `json:"warnings,omitempty"`
}

func MapSegments(placed []calendar.PlacedSegment) []Segment {
	out := make([]Segment, 0, len(placed))
	for _, s := range placed {
		out = append(out, Segment{
			EntityID:       s.EntityID,
			Kind:           string(s.Kind),
			Level:          s.Level,
			VisibleDays:    s.VisibleDays,
			StartTruncated: s.StartTruncated,
			EndTruncated:   s.EndTruncated,
			LeftBevel:      s.LeftBevel,
			RightBevel:     s.RightBevel,
			OffsetPx:       s.OffsetPx,
			WidthPx:        s.WidthPx,
		})
	}
	return out
}
