package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaincalendar "stayops/internal/domain/calendar"
	domainpricing "stayops/internal/domain/pricing"
	"stayops/internal/domain/shared/calday"
	"stayops/internal/infra/storage/memory"
)

func sep(d int) calday.Day { return calday.Date(2026, time.September, d) }

func rowFixture(t *testing.T) (*memory.RuleStore, *memory.CalendarStore) {
	t.Helper()
	rules := memory.NewRuleStore()
	cal := memory.NewCalendarStore()

	cal.PutProperty(domaincalendar.Property{ID: "prop-1", Name: "Aurora Loft", BasePrice: 120})
	cal.PutBooking(domaincalendar.Booking{ID: "bkg-1", PropertyID: "prop-1", CheckIn: sep(2), CheckOut: sep(6)})
	cal.PutBooking(domaincalendar.Booking{ID: "bkg-2", PropertyID: "prop-1", CheckIn: sep(6), CheckOut: sep(9)})
	cal.PutBlocked(domaincalendar.BlockedPeriod{ID: "blk-1", PropertyID: "prop-1", Start: sep(11), End: sep(12), Reason: "maintenance"})

	_, err := rules.Save(context.Background(), domainpricing.Rule{
		ID:              "weekend-promo",
		Name:            "Weekend promo",
		Type:            domainpricing.RulePromotion,
		Enabled:         true,
		Priority:        40,
		Start:           sep(1),
		End:             sep(30),
		PromotionType:   "last_minute",
		PriceAdjustment: -10,
	})
	require.NoError(t, err)
	return rules, cal
}

func TestGetCalendarRow(t *testing.T) {
	rules, cal := rowFixture(t)
	h := &GetCalendarRowHandler{Rules: rules, Calendar: cal}

	row, err := h.Handle(context.Background(), GetCalendarRowQuery{
		PropertyID: "prop-1",
		From:       sep(1),
		To:         sep(14),
	})
	require.NoError(t, err)
	assert.Equal(t, "prop-1", row.PropertyID)
	assert.Equal(t, "2026-09-01", row.From)
	assert.Equal(t, "2026-09-14", row.To)
	require.Len(t, row.Days, 14)
	require.Len(t, row.Segments, 3)
	assert.Empty(t, row.Warnings)

	// Turnover day: departing segment ends exactly where the arriving one
	// starts, at the Sep 6 cell midpoint.
	a, b := row.Segments[0], row.Segments[1]
	midpoint := 5*DefaultCellWidthPx + DefaultCellWidthPx/2
	assert.Equal(t, midpoint, a.OffsetPx+a.WidthPx)
	assert.Equal(t, midpoint, b.OffsetPx)

	// Every day carries resolved pricing; blocked days are flagged from the
	// blocked period even without a closing rule.
	assert.Equal(t, 108.0, row.Days[0].FinalPrice)
	assert.False(t, row.Days[0].IsBlocked)
	assert.True(t, row.Days[10].IsBlocked)
	assert.True(t, row.Days[11].IsBlocked)
	assert.False(t, row.Days[12].IsBlocked)
}

func TestGetCalendarRowDefaultsCellWidth(t *testing.T) {
	rules, cal := rowFixture(t)
	h := &GetCalendarRowHandler{Rules: rules, Calendar: cal}

	implicit, err := h.Handle(context.Background(), GetCalendarRowQuery{PropertyID: "prop-1", From: sep(1), To: sep(14)})
	require.NoError(t, err)
	explicit, err := h.Handle(context.Background(), GetCalendarRowQuery{PropertyID: "prop-1", From: sep(1), To: sep(14), CellWidth: DefaultCellWidthPx})
	require.NoError(t, err)
	assert.Equal(t, explicit, implicit)
}

func TestGetCalendarRowUnknownPropertyIsFailSoft(t *testing.T) {
	rules, cal := rowFixture(t)
	h := &GetCalendarRowHandler{Rules: rules, Calendar: cal}

	row, err := h.Handle(context.Background(), GetCalendarRowQuery{PropertyID: "ghost", From: sep(1), To: sep(7)})
	require.NoError(t, err)
	assert.Empty(t, row.Segments)
	require.Len(t, row.Days, 7)
	assert.Zero(t, row.Days[0].FinalPrice)
}

func TestGetCalendarRowRejectsInvertedWindow(t *testing.T) {
	rules, cal := rowFixture(t)
	h := &GetCalendarRowHandler{Rules: rules, Calendar: cal}

	_, err := h.Handle(context.Background(), GetCalendarRowQuery{PropertyID: "prop-1", From: sep(10), To: sep(5)})
	assert.ErrorIs(t, err, calday.ErrInvalidWindow)
}
