package pricing

import (
	"sort"

	"stayops/internal/domain/shared/calday"
)

// Match filters the rules that cover the given property and day and returns
// them ordered by priority descending. Equal priorities keep creation order
// (Seq ascending) so repeated calls are reproducible. The day must already be
// a normalized calendar day; rules are assumed well-formed.
func Match(rules []Rule, propertyID string, day calday.Day) []Rule {
	matches := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if !r.Enabled {
			continue
		}
		if !r.AppliesTo(propertyID) {
			continue
		}
		if !r.Covers(day) {
			continue
		}
		matches = append(matches, r)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Priority != matches[j].Priority {
			return matches[i].Priority > matches[j].Priority
		}
		return matches[i].Seq < matches[j].Seq
	})
	return matches
}
