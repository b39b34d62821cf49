package memory

import (
	"context"
	"sync"

	domaincalendar "stayops/internal/domain/calendar"
	"stayops/internal/domain/shared/calday"
)

// CalendarStore holds properties, bookings and blocked periods in memory,
// seeded from fixtures at startup. Bookings arrive through external channel
// feeds; the core only reads them.
type CalendarStore struct {
	mu         sync.RWMutex
	properties map[string]domaincalendar.Property
	bookings   map[string][]domaincalendar.Booking
	blocked    map[string][]domaincalendar.BlockedPeriod
}

func NewCalendarStore() *CalendarStore {
	return &CalendarStore{
		properties: make(map[string]domaincalendar.Property),
		bookings:   make(map[string][]domaincalendar.Booking),
		blocked:    make(map[string][]domaincalendar.BlockedPeriod),
	}
}

// PutProperty registers or replaces a property record.
func (s *CalendarStore) PutProperty(p domaincalendar.Property) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties[p.ID] = p
}

// PutBooking appends a booking for its property.
func (s *CalendarStore) PutBooking(b domaincalendar.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.PropertyID] = append(s.bookings[b.PropertyID], b)
}

// PutBlocked appends a blocked period for its property.
func (s *CalendarStore) PutBlocked(p domaincalendar.BlockedPeriod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocked[p.PropertyID] = append(s.blocked[p.PropertyID], p)
}

func (s *CalendarStore) Property(ctx context.Context, id string) (domaincalendar.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[id]
	if !ok {
		return domaincalendar.Property{}, domaincalendar.ErrUnknownProperty
	}
	return p, nil
}

// BookingsInWindow returns the property's bookings that intersect the window,
// counting the checkout day as visible, in insertion order.
func (s *CalendarStore) BookingsInWindow(ctx context.Context, propertyID string, w calday.Window) ([]domaincalendar.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domaincalendar.Booking
	for _, b := range s.bookings[propertyID] {
		if b.CheckIn <= w.End && b.CheckOut >= w.Start {
			out = append(out, b)
		}
	}
	return out, nil
}

// BookingsOn returns the bookings rendered in a single day cell. The
// checkout day counts: it is visually the check-out day even though it is
// not a paid night, which is how a turnover day ends up with two bookings.
func (s *CalendarStore) BookingsOn(ctx context.Context, propertyID string, day calday.Day) ([]domaincalendar.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domaincalendar.Booking
	for _, b := range s.bookings[propertyID] {
		if b.CoversDay(day) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *CalendarStore) BlockedInWindow(ctx context.Context, propertyID string, w calday.Window) ([]domaincalendar.BlockedPeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domaincalendar.BlockedPeriod
	for _, p := range s.blocked[propertyID] {
		if p.Start <= w.End && p.End >= w.Start {
			out = append(out, p)
		}
	}
	return out, nil
}

// BlockedOn returns the first blocked period covering the day, or nil.
func (s *CalendarStore) BlockedOn(ctx context.Context, propertyID string, day calday.Day) (*domaincalendar.BlockedPeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.blocked[propertyID] {
		if p.CoversDay(day) {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

var _ domaincalendar.Repository = (*CalendarStore)(nil)
