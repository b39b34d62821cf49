package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/domain/pricing"
	"stayops/internal/domain/shared/calday"
)

func storedRule(id string) pricing.Rule {
	return pricing.Rule{
		ID:              id,
		Name:            "rule " + id,
		Type:            pricing.RulePromotion,
		Enabled:         true,
		Priority:        10,
		Start:           calday.Date(2026, time.September, 1),
		End:             calday.Date(2026, time.September, 30),
		PromotionType:   "early_bird",
		PriceAdjustment: -10,
	}
}

func TestRuleStoreSaveAssignsSequenceInOrder(t *testing.T) {
	ctx := context.Background()
	store := NewRuleStore()

	a, err := store.Save(ctx, storedRule("a"))
	require.NoError(t, err)
	b, err := store.Save(ctx, storedRule("b"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.Seq)
	assert.Equal(t, int64(2), b.Seq)
	assert.False(t, a.CreatedAt.IsZero())

	rules, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "a", rules[0].ID)
	assert.Equal(t, "b", rules[1].ID)
}

func TestRuleStoreUpdateKeepsSequenceAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := NewRuleStore()

	saved, err := store.Save(ctx, storedRule("a"))
	require.NoError(t, err)
	_, err = store.Save(ctx, storedRule("b"))
	require.NoError(t, err)

	edited := saved
	edited.Priority = 99
	edited.Seq = 0
	edited.CreatedAt = time.Time{}

	updated, err := store.Save(ctx, edited)
	require.NoError(t, err)
	assert.Equal(t, saved.Seq, updated.Seq)
	assert.Equal(t, saved.CreatedAt, updated.CreatedAt)
	assert.Equal(t, 99, updated.Priority)

	got, err := store.ByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 99, got.Priority)
}

func TestRuleStoreByIDNotFound(t *testing.T) {
	store := NewRuleStore()
	_, err := store.ByID(context.Background(), "missing")
	assert.ErrorIs(t, err, pricing.ErrRuleNotFound)
}

func TestRuleStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewRuleStore()
	_, err := store.Save(ctx, storedRule("a"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.ByID(ctx, "a")
	assert.ErrorIs(t, err, pricing.ErrRuleNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "a"), pricing.ErrRuleNotFound)
}

func TestRuleStoreListIsSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewRuleStore()
	_, err := store.Save(ctx, storedRule("a"))
	require.NoError(t, err)

	rules, err := store.List(ctx)
	require.NoError(t, err)
	rules[0].Name = "mutated"

	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rule a", again[0].Name)
}
