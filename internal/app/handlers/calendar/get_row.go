package calendar

import (
	"context"
	"errors"

	"stayops/internal/app/dto"
	"stayops/internal/app/queries"
	domaincalendar "stayops/internal/domain/calendar"
	domainpricing "stayops/internal/domain/pricing"
	"stayops/internal/domain/shared/calday"
)

const getCalendarRowKey = "calendar.row"

// DefaultCellWidthPx matches the grid's default day-cell width.
const DefaultCellWidthPx = 40.0

type GetCalendarRowQuery struct {
	PropertyID string
	From       calday.Day
	To         calday.Day
	CellWidth  float64
}

func (q GetCalendarRowQuery) Key() string { return getCalendarRowKey }

// GetCalendarRowHandler composes segment layout and per-day pricing into the
// row view-model the grid renders. It holds no state of its own.
type GetCalendarRowHandler struct {
	Rules    domainpricing.RuleRepository
	Calendar domaincalendar.Repository
}

func (h *GetCalendarRowHandler) Handle(ctx context.Context, q GetCalendarRowQuery) (dto.CalendarRow, error) {
	window, err := calday.NewWindow(q.From, q.To)
	if err != nil {
		return dto.CalendarRow{}, err
	}
	cellWidth := q.CellWidth
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidthPx
	}

	prop, err := h.Calendar.Property(ctx, q.PropertyID)
	if err != nil && !errors.Is(err, domaincalendar.ErrUnknownProperty) {
		return dto.CalendarRow{}, err
	}
	bookings, err := h.Calendar.BookingsInWindow(ctx, q.PropertyID, window)
	if err != nil {
		return dto.CalendarRow{}, err
	}
	blocked, err := h.Calendar.BlockedInWindow(ctx, q.PropertyID, window)
	if err != nil {
		return dto.CalendarRow{}, err
	}
	rules, err := h.Rules.List(ctx)
	if err != nil {
		return dto.CalendarRow{}, err
	}

	row := domaincalendar.BuildRow(bookings, blocked, window, cellWidth)

	days := make([]dto.DayCell, 0, window.Days())
	for day := window.Start; day <= window.End; day++ {
		matches := domainpricing.Match(rules, q.PropertyID, day)
		resolved := domainpricing.Resolve(prop.BasePrice, matches)
		cell := dto.DayCell{
			Date:       day.String(),
			FinalPrice: resolved.FinalPrice,
			MinStay:    resolved.MinStay,
			IsBlocked:  resolved.IsBlocked,
		}
		if !cell.IsBlocked {
			for _, p := range blocked {
				if p.CoversDay(day) {
					cell.IsBlocked = true
					break
				}
			}
		}
		days = append(days, cell)
	}

	return dto.CalendarRow{
		PropertyID: q.PropertyID,
		From:       window.Start.String(),
		To:         window.End.String(),
		Days:       days,
		Segments:   dto.MapSegments(row.Segments),
		Warnings:   row.Warnings,
	}, nil
}

var _ queries.Handler[GetCalendarRowQuery, dto.CalendarRow] = (*GetCalendarRowHandler)(nil)
