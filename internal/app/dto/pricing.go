package dto

import (
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/shared/calday"
)

type PriceAdjustment struct {
	RuleName string  `json:"rule_name"`
	Percent  float64 `json:"percent"`
}

type DailyPricing struct {
	PropertyID         string            `json:"property_id"`
	Date               string            `json:"date"`
	BasePrice          float64           `json:"base_price"`
	Adjustments        []PriceAdjustment `json:"adjustments"`
	FinalPrice         float64           `json:"final_price"`
	MinStay            int               `json:"min_stay"`
	MaxStay            int               `json:"max_stay,omitempty"`
	IsBlocked          bool              `json:"is_blocked"`
	BlockReason        string            `json:"block_reason,omitempty"`
	RestrictedChannels []string          `json:"restricted_channels,omitempty"`
}

func MapDailyPricing(propertyID string, day calday.Day, dp pricing.DailyPricing) DailyPricing {
	adjustments := make([]PriceAdjustment, 0, len(dp.Adjustments))
	for _, a := range dp.Adjustments {
		adjustments = append(adjustments, PriceAdjustment{RuleName: a.RuleName, Percent: a.Percent})
	}
	return DailyPricing{
		PropertyID:         propertyID,
		Date:               day.String(),
		BasePrice:          dp.BasePrice,
		Adjustments:        adjustments,
		FinalPrice:         dp.FinalPrice,
		MinStay:            dp.MinStay,
		MaxStay:            dp.MaxStay,
		IsBlocked:          dp.IsBlocked,
		BlockReason:        dp.BlockReason,
		RestrictedChannels: dp.RestrictedChannels,
	}
}

type Rule struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	PropertyID      string   `json:"property_id,omitempty"`
	Enabled         bool     `json:"enabled"`
	Priority        int      `json:"priority"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	MinStay         int      `json:"min_stay,omitempty"`
	MaxStay         int      `json:"max_stay,omitempty"`
	PriceAdjustment float64  `json:"price_adjustment,omitempty"`
	PromotionType   string   `json:"promotion_type,omitempty"`
	BlockReason     string   `json:"block_reason,omitempty"`
	Channels        []string `json:"channels,omitempty"`
}

func MapRule(r pricing.Rule) Rule {
	return Rule{
		ID:              r.ID,
		Name:            r.Name,
		Type:            string(r.Type),
		PropertyID:      r.PropertyID,
		Enabled:         r.Enabled,
		Priority:        r.Priority,
		StartDate:       r.Start.String(),
		EndDate:         r.End.String(),
		MinStay:         r.MinStay,
		MaxStay:         r.MaxStay,
		PriceAdjustment: r.PriceAdjustment,
		PromotionType:   r.PromotionType,
		BlockReason:     r.BlockReason,
		Channels:        r.Channels,
	}
}

func MapRules(rules []pricing.Rule) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		out = append(out, MapRule(r))
	}
	return out
}
