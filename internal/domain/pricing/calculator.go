package pricing

import "math"

// Adjustment records one price-affecting rule application, in fold order.
type Adjustment struct {
	RuleName string
	Percent  float64
}

// DailyPricing is the resolved view for one (property, day) pair. It is
// derived on every query and never cached, so rule edits are visible to the
// very next call.
type DailyPricing struct {
	BasePrice          float64
	Adjustments        []Adjustment
	FinalPrice         float64
	MinStay            int
	MaxStay            int
	IsBlocked          bool
	BlockReason        string
	RestrictedChannels []string
}

// Resolve folds the ordered matches (highest priority first) into the
// effective nightly price, stay constraints and block status.
//
// A closing block stops further price computation but the price folded so far
// is still reported for display. A price override replaces the running price
// outright and ends percentage folding; promotions compound multiplicatively.
// Stay constraints take the highest-priority value seen. Channel restrictions
// are recorded and left to the booking validator.
//
// Fail-soft on bad input: a non-positive or NaN base price passes through
// unchanged with no adjustments recorded. Resolve never panics since its
// output feeds the grid directly.
func Resolve(basePrice float64, matches []Rule) DailyPricing {
	dp := DailyPricing{
		BasePrice:  basePrice,
		FinalPrice: basePrice,
		MinStay:    1,
	}
	priceable := basePrice > 0 && !math.IsNaN(basePrice)

	price := basePrice
	overridden := false
	minSeen, maxSeen := false, false

	for _, r := range matches {
		switch r.Type {
		case RuleClosingBlock:
			if !dp.IsBlocked {
				dp.IsBlocked = true
				dp.BlockReason = r.BlockReason
			}
		case RulePriceOverride:
			if priceable && !dp.IsBlocked && !overridden {
				price = basePrice * (1 + r.PriceAdjustment/100)
				overridden = true
				dp.Adjustments = append(dp.Adjustments, Adjustment{RuleName: r.Name, Percent: r.PriceAdjustment})
			}
		case RulePromotion:
			if priceable && !dp.IsBlocked && !overridden {
				price *= 1 + r.PriceAdjustment/100
				dp.Adjustments = append(dp.Adjustments, Adjustment{RuleName: r.Name, Percent: r.PriceAdjustment})
			}
		case RuleMinStay:
			if !minSeen {
				dp.MinStay = r.MinStay
				minSeen = true
			}
		case RuleMaxStay:
			if !maxSeen {
				dp.MaxStay = r.MaxStay
				maxSeen = true
			}
		case RuleChannelRestriction:
			dp.RestrictedChannels = append(dp.RestrictedChannels, r.Channels...)
		}
	}

	if priceable {
		// Intermediate multipliers stay unrounded; only the final price is
		// rounded to cents.
		dp.FinalPrice = math.Round(price*100) / 100
	}
	return dp
}
