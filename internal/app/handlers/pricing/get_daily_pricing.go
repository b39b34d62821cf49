package pricing

import (
	"context"
	"errors"

	"stayops/internal/app/dto"
	"stayops/internal/app/queries"
	domaincalendar "stayops/internal/domain/calendar"
	domainpricing "stayops/internal/domain/pricing"
	"stayops/internal/domain/shared/calday"
)

const (
	getDailyPricingKey = "pricing.daily"
	getPricingRangeKey = "pricing.range"
)

type GetDailyPricingQuery struct {
	PropertyID string
	Date       calday.Day
}

func (q GetDailyPricingQuery) Key() string { return getDailyPricingKey }

type GetDailyPricingHandler struct {
	Rules    domainpricing.RuleRepository
	Calendar domaincalendar.Repository
}

// Handle recomputes the day's pricing from scratch on every call so a rule
// edit is visible to the very next query. An unknown property resolves
// fail-soft against a zero base price; the grid always renders something.
func (h *GetDailyPricingHandler) Handle(ctx context.Context, q GetDailyPricingQuery) (dto.DailyPricing, error) {
	prop, err := h.Calendar.Property(ctx, q.PropertyID)
	if err != nil && !errors.Is(err, domaincalendar.ErrUnknownProperty) {
		return dto.DailyPricing{}, err
	}

	rules, err := h.Rules.List(ctx)
	if err != nil {
		return dto.DailyPricing{}, err
	}

	matches := domainpricing.Match(rules, q.PropertyID, q.Date)
	resolved := domainpricing.Resolve(prop.BasePrice, matches)
	return dto.MapDailyPricing(q.PropertyID, q.Date, resolved), nil
}

var _ queries.Handler[GetDailyPricingQuery, dto.DailyPricing] = (*GetDailyPricingHandler)(nil)

type GetPricingRangeQuery struct {
	PropertyID string
	From       calday.Day
	To         calday.Day
}

func (q GetPricingRangeQuery) Key() string { return getPricingRangeKey }

type GetPricingRangeHandler struct {
	Rules    domainpricing.RuleRepository
	Calendar domaincalendar.Repository
}

// Handle resolves one DailyPricing per day of the window, loading the rule
// set once for the whole pass.
func (h *GetPricingRangeHandler) Handle(ctx context.Context, q GetPricingRangeQuery) ([]dto.DailyPricing, error) {
	window, err := calday.NewWindow(q.From, q.To)
	if err != nil {
		return nil, err
	}
	prop, err := h.Calendar.Property(ctx, q.PropertyID)
	if err != nil && !errors.Is(err, domaincalendar.ErrUnknownProperty) {
		return nil, err
	}
	rules, err := h.Rules.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DailyPricing, 0, window.Days())
	for day := window.Start; day <= window.End; day++ {
		matches := domainpricing.Match(rules, q.PropertyID, day)
		resolved := domainpricing.Resolve(prop.BasePrice, matches)
		out = append(out, dto.MapDailyPricing(q.PropertyID, day, resolved))
	}
	return out, nil
}

var _ queries.Handler[GetPricingRangeQuery, []dto.DailyPricing] = (*GetPricingRangeHandler)(nil)
