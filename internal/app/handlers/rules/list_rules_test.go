package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/infra/storage/memory"
)

func TestListRulesFiltersByPropertyScope(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRuleStore()
	add := &AddRuleHandler{Rules: store}

	scoped := promoPayload()
	scoped.PropertyID = "prop-1"
	global := promoPayload()
	global.Name = "Everywhere promo"
	global.PropertyID = ""
	other := promoPayload()
	other.Name = "Other promo"
	other.PropertyID = "prop-2"

	for _, p := range []RulePayload{scoped, global, other} {
		_, err := add.Handle(ctx, AddRuleCommand{Payload: p})
		require.NoError(t, err)
	}

	h := &ListRulesHandler{Rules: store}

	all, err := h.Handle(ctx, ListRulesQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	forProp1, err := h.Handle(ctx, ListRulesQuery{PropertyID: "prop-1"})
	require.NoError(t, err)
	require.Len(t, forProp1, 2)
	assert.Equal(t, "Autumn promo", forProp1[0].Name)
	assert.Equal(t, "Everywhere promo", forProp1[1].Name)
}
