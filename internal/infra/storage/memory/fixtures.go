package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	domaincalendar "stayops/internal/domain/calendar"
	domainpricing "stayops/internal/domain/pricing"
	"stayops/internal/domain/shared/calday"
)

type fixtureProperty struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
}

type fixtureBooking struct {
	ID          string  `json:"id"`
	PropertyID  string  `json:"property_id"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	Channel     string  `json:"channel"`
	GuestName   string  `json:"guest_name"`
	GuestsCount int     `json:"guests_count"`
	NightlyRate float64 `json:"nightly_rate"`
	Status      string  `json:"status"`
}

type fixtureBlocked struct {
	ID               string `json:"id"`
	PropertyID       string `json:"property_id"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Reason           string `json:"reason"`
	CleaningSchedule string `json:"cleaning_schedule"`
}

type fixtureRule struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	PropertyID      string   `json:"property_id"`
	Enabled         bool     `json:"enabled"`
	Priority        int      `json:"priority"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	MinStay         int      `json:"min_stay"`
	MaxStay         int      `json:"max_stay"`
	PriceAdjustment float64  `json:"price_adjustment"`
	PromotionType   string   `json:"promotion_type"`
	BlockReason     string   `json:"block_reason"`
	Channels        []string `json:"channels"`
}

type fixtureFile struct {
	Properties     []fixtureProperty `json:"properties"`
	Bookings       []fixtureBooking  `json:"bookings"`
	BlockedPeriods []fixtureBlocked  `json:"blocked_periods"`
	Rules          []fixtureRule     `json:"rules"`
}

// LoadFixtures seeds the stores from a JSON file so the back office has data
// to render locally. Rules are saved in file order, which fixes their
// creation sequence.
func LoadFixtures(ctx context.Context, path string, cal *CalendarStore, rules domainpricing.RuleRepository) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var file fixtureFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("fixtures: %w", err)
	}

	for _, p := range file.Properties {
		cal.PutProperty(domaincalendar.Property{ID: p.ID, Name: p.Name, BasePrice: p.BasePrice})
	}
	for _, b := range file.Bookings {
		checkIn, err := calday.Parse(b.CheckIn)
		if err != nil {
			return fmt.Errorf("fixtures: booking %s: %w", b.ID, err)
		}
		checkOut, err := calday.Parse(b.CheckOut)
		if err != nil {
			return fmt.Errorf("fixtures: booking %s: %w", b.ID, err)
		}
		cal.PutBooking(domaincalendar.Booking{
			ID:          b.ID,
			PropertyID:  b.PropertyID,
			CheckIn:     checkIn,
			CheckOut:    checkOut,
			Channel:     b.Channel,
			GuestName:   b.GuestName,
			GuestsCount: b.GuestsCount,
			NightlyRate: b.NightlyRate,
			Status:      b.Status,
		})
	}
	for _, p := range file.BlockedPeriods {
		start, err := calday.Parse(p.StartDate)
		if err != nil {
			return fmt.Errorf("fixtures: blocked period %s: %w", p.ID, err)
		}
		end, err := calday.Parse(p.EndDate)
		if err != nil {
			return fmt.Errorf("fixtures: blocked period %s: %w", p.ID, err)
		}
		cal.PutBlocked(domaincalendar.BlockedPeriod{
			ID:               p.ID,
			PropertyID:       p.PropertyID,
			Start:            start,
			End:              end,
			Reason:           p.Reason,
			CleaningSchedule: p.CleaningSchedule,
		})
	}
	for _, r := range file.Rules {
		start, err := calday.Parse(r.StartDate)
		if err != nil {
			return fmt.Errorf("fixtures: rule %s: %w", r.ID, err)
		}
		end, err := calday.Parse(r.EndDate)
		if err != nil {
			return fmt.Errorf("fixtures: rule %s: %w", r.ID, err)
		}
		rule := domainpricing.Rule{
			ID:              r.ID,
			Name:            r.Name,
			Type:            domainpricing.RuleType(r.Type),
			PropertyID:      r.PropertyID,
			Enabled:         r.Enabled,
			Priority:        r.Priority,
			Start:           start,
			End:             end,
			MinStay:         r.MinStay,
			MaxStay:         r.MaxStay,
			PriceAdjustment: r.PriceAdjustment,
			PromotionType:   r.PromotionType,
			BlockReason:     r.BlockReason,
			Channels:        r.Channels,
		}
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("fixtures: rule %s: %w", r.ID, err)
		}
		if _, err := rules.Save(ctx, rule); err != nil {
			return fmt.Errorf("fixtures: rule %s: %w", r.ID, err)
		}
	}
	return nil
}
