package rules

import (
	"context"

	"stayops/internal/app/dto"
	"stayops/internal/app/queries"
	domainpricing "stayops/internal/domain/pricing"
)

const listRulesKey = "rules.list"

type ListRulesQuery struct {
	// PropertyID filters to rules whose scope covers the property; empty
	// returns everything.
	PropertyID string
}

func (q ListRulesQuery) Key() string { return listRulesKey }

type ListRulesHandler struct {
	Rules domainpricing.RuleRepository
}

func (h *ListRulesHandler) Handle(ctx context.Context, q ListRulesQuery) ([]dto.Rule, error) {
	all, err := h.Rules.List(ctx)
	if err != nil {
		return nil, err
	}
	if q.PropertyID == "" {
		return dto.MapRules(all), nil
	}
	filtered := make([]domainpricing.Rule, 0, len(all))
	for _, r := range all {
		if r.AppliesTo(q.PropertyID) {
			filtered = append(filtered, r)
		}
	}
	return dto.MapRules(filtered), nil
}

var _ queries.Handler[ListRulesQuery, []dto.Rule] = (*ListRulesHandler)(nil)
