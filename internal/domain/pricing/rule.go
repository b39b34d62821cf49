package pricing

import (
	"context"
	"errors"
	"time"

	"stayops/internal/domain/shared/calday"
)

var (
	ErrInvalidDateRange = errors.New("pricing: rule end date precedes start date")
	ErrMissingField     = errors.New("pricing: rule is missing a type-specific field")
	ErrUnknownRuleType  = errors.New("pricing: unknown rule type")
	ErrRuleNotFound     = errors.New("pricing: rule not found")
)

// RuleType discriminates the rule payload variants.
type RuleType string

const (
	RuleMinStay            RuleType = "min_stay"
	RuleMaxStay            RuleType = "max_stay"
	RuleClosingBlock       RuleType = "closing_block"
	RuleChannelRestriction RuleType = "channel_restriction"
	RulePromotion          RuleType = "promotion"
	RulePriceOverride      RuleType = "price_override"
)

// Rule is a configurable pricing rule. PropertyID scopes it to one property;
// an empty PropertyID means the rule applies to every property. Only the
// fields relevant to Type are populated. Seq is assigned by the store on
// insertion and breaks priority ties deterministically.
type Rule struct {
	ID         string
	Name       string
	Type       RuleType
	PropertyID string
	Enabled    bool
	Priority   int
	Seq        int64
	Start      calday.Day
	End        calday.Day
	CreatedAt  time.Time

	MinStay         int
	MaxStay         int
	PriceAdjustment float64
	PromotionType   string
	BlockReason     string
	Channels        []string
}

// AppliesTo reports whether the rule's scope covers the property.
func (r Rule) AppliesTo(propertyID string) bool {
	return r.PropertyID == "" || r.PropertyID == propertyID
}

// Covers reports whether the day falls in the rule's inclusive date range.
func (r Rule) Covers(day calday.Day) bool {
	return day >= r.Start && day <= r.End
}

// Validate enforces the invariants checked at the rule CRUD boundary. The
// matcher assumes rules passed it are already well-formed.
func (r Rule) Validate() error {
	if r.End < r.Start {
		return ErrInvalidDateRange
	}
	switch r.Type {
	case RuleMinStay:
		if r.MinStay < 1 {
			return ErrMissingField
		}
	case RuleMaxStay:
		if r.MaxStay < 1 {
			return ErrMissingField
		}
	case RuleClosingBlock:
		// BlockReason is optional display text.
	case RuleChannelRestriction:
		if len(r.Channels) == 0 {
			return ErrMissingField
		}
	case RulePromotion, RulePriceOverride:
		if r.PriceAdjustment == 0 {
			return ErrMissingField
		}
	default:
		return ErrUnknownRuleType
	}
	return nil
}

// Clone returns a deep copy with a fresh identity for the target property.
// Seq and CreatedAt are reset so the store treats the copy as newly created.
func (r Rule) Clone(id, propertyID string) Rule {
	clone := r
	clone.ID = id
	clone.PropertyID = propertyID
	clone.Seq = 0
	clone.CreatedAt = time.Time{}
	clone.Channels = append([]string(nil), r.Channels...)
	return clone
}

// RuleRepository abstracts the mutable rule set the matcher reads. The memory
// implementation is the default; persistence beyond it is an external
// collaborator concern.
type RuleRepository interface {
	List(ctx context.Context) ([]Rule, error)
	ByID(ctx context.Context, id string) (Rule, error)
	Save(ctx context.Context, rule Rule) (Rule, error)
	Delete(ctx context.Context, id string) error
}
