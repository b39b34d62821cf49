package calendar

import (
	"context"
	"errors"

	"stayops/internal/domain/shared/calday"
)

var (
	ErrBookingNotFound = errors.New("calendar: booking not found")
	ErrUnknownProperty = errors.New("calendar: unknown property")
)

// Booking occupies the half-open night range [CheckIn, CheckOut). The
// check-out day is visually part of the booking but not a paid night.
type Booking struct {
	ID          string
	PropertyID  string
	CheckIn     calday.Day
	CheckOut    calday.Day
	Channel     string
	GuestName   string
	GuestsCount int
	NightlyRate float64
	Status      string
}

// Nights is the paid-night count; non-positive for malformed data.
func (b Booking) Nights() int { return calday.DaysBetween(b.CheckIn, b.CheckOut) }

// OccupiesNight reports whether day is a paid night of the booking.
func (b Booking) OccupiesNight(day calday.Day) bool {
	return day >= b.CheckIn && day < b.CheckOut
}

// CoversDay includes the check-out day, which the grid renders as part of
// the booking even though it is not occupied overnight.
func (b Booking) CoversDay(day calday.Day) bool {
	return day >= b.CheckIn && day <= b.CheckOut
}

// OverlapsNights reports whether two bookings share at least one paid night.
// Same-day turnover (one checkout equal to the other check-in) does not
// overlap.
func (b Booking) OverlapsNights(other Booking) bool {
	return b.CheckIn < other.CheckOut && other.CheckIn < b.CheckOut
}

// BlockedPeriod closes a property for [Start, End], inclusive on both ends.
type BlockedPeriod struct {
	ID               string
	PropertyID       string
	Start            calday.Day
	End              calday.Day
	Reason           string
	CleaningSchedule string
}

func (p BlockedPeriod) CoversDay(day calday.Day) bool {
	return day >= p.Start && day <= p.End
}

// Property carries the per-property defaults the pricing grid starts from.
type Property struct {
	ID        string
	Name      string
	BasePrice float64
}

// Repository reads the booking and blocked-period document for the grid.
// The core never mutates it; bookings arrive through external channels.
type Repository interface {
	Property(ctx context.Context, id string) (Property, error)
	BookingsInWindow(ctx context.Context, propertyID string, w calday.Window) ([]Booking, error)
	BookingsOn(ctx context.Context, propertyID string, day calday.Day) ([]Booking, error)
	BlockedInWindow(ctx context.Context, propertyID string, w calday.Window) ([]BlockedPeriod, error)
	BlockedOn(ctx context.Context, propertyID string, day calday.Day) (*BlockedPeriod, error)
}
