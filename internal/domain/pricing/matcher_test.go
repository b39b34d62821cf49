package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/domain/shared/calday"
)

func day(d int) calday.Day { return calday.Date(2026, time.September, d) }

func testRule(id string, priority int, seq int64) Rule {
	return Rule{
		ID:              id,
		Name:            id,
		Type:            RulePromotion,
		Enabled:         true,
		Priority:        priority,
		Seq:             seq,
		Start:           day(1),
		End:             day(30),
		PriceAdjustment: -10,
	}
}

func TestMatchOrdersByPriorityDescending(t *testing.T) {
	rules := []Rule{
		testRule("low", 10, 1),
		testRule("high", 90, 2),
		testRule("mid", 50, 3),
	}
	matches := Match(rules, "prop-1", day(10))
	require.Len(t, matches, 3)
	assert.Equal(t, "high", matches[0].ID)
	assert.Equal(t, "mid", matches[1].ID)
	assert.Equal(t, "low", matches[2].ID)
}

func TestMatchTieBreaksByCreationOrder(t *testing.T) {
	rules := []Rule{
		testRule("first", 50, 1),
		testRule("second", 50, 2),
		testRule("third", 50, 3),
	}
	// Present them shuffled; creation order must still win, on every call.
	shuffled := []Rule{rules[2], rules[0], rules[1]}
	for i := 0; i < 5; i++ {
		matches := Match(shuffled, "prop-1", day(10))
		require.Len(t, matches, 3)
		assert.Equal(t, "first", matches[0].ID)
		assert.Equal(t, "second", matches[1].ID)
		assert.Equal(t, "third", matches[2].ID)
	}
}

func TestMatchFiltersDisabled(t *testing.T) {
	off := testRule("off", 50, 1)
	off.Enabled = false
	matches := Match([]Rule{off, testRule("on", 40, 2)}, "prop-1", day(10))
	require.Len(t, matches, 1)
	assert.Equal(t, "on", matches[0].ID)
}

func TestMatchFiltersScope(t *testing.T) {
	scoped := testRule("other-prop", 50, 1)
	scoped.PropertyID = "prop-2"
	global := testRule("global", 40, 2)
	mine := testRule("mine", 30, 3)
	mine.PropertyID = "prop-1"

	matches := Match([]Rule{scoped, global, mine}, "prop-1", day(10))
	require.Len(t, matches, 2)
	assert.Equal(t, "global", matches[0].ID)
	assert.Equal(t, "mine", matches[1].ID)
}

func TestMatchFiltersDateRange(t *testing.T) {
	r := testRule("sept", 50, 1)
	r.Start = day(5)
	r.End = day(7)

	assert.Empty(t, Match([]Rule{r}, "prop-1", day(4)))
	assert.Len(t, Match([]Rule{r}, "prop-1", day(5)), 1)
	assert.Len(t, Match([]Rule{r}, "prop-1", day(7)), 1)
	assert.Empty(t, Match([]Rule{r}, "prop-1", day(8)))
}

func TestMatchSingleDayRule(t *testing.T) {
	r := testRule("one-day", 50, 1)
	r.Start = day(5)
	r.End = day(5)
	assert.Len(t, Match([]Rule{r}, "prop-1", day(5)), 1)
	assert.Empty(t, Match([]Rule{r}, "prop-1", day(6)))
}

func TestMatchEmptyRuleSet(t *testing.T) {
	assert.Empty(t, Match(nil, "prop-1", day(5)))
}

func TestMatchPastRuleNeverMatchesFutureDates(t *testing.T) {
	r := testRule("expired", 50, 1)
	r.Start = day(1)
	r.End = day(3)
	assert.Empty(t, Match([]Rule{r}, "prop-1", day(20)))
}
