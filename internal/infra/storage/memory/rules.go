package memory

import (
	"context"
	"sync"
	"time"

	domainpricing "stayops/internal/domain/pricing"
)

// RuleStore keeps the pricing rule set in memory. The rule set is a
// single-writer document mutated by one admin session, so a plain RWMutex is
// all the coordination it needs. Insertion order is preserved through a
// monotonic sequence number used as the priority tie-break.
type RuleStore struct {
	mu    sync.RWMutex
	rules []domainpricing.Rule
	seq   int64
}

// NewRuleStore builds an empty store.
func NewRuleStore() *RuleStore {
	return &RuleStore{}
}

// List returns a snapshot of all rules in creation order.
func (s *RuleStore) List(ctx context.Context) ([]domainpricing.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domainpricing.Rule, len(s.rules))
	copy(out, s.rules)
	return out, nil
}

// ByID returns a rule or pricing.ErrRuleNotFound.
func (s *RuleStore) ByID(ctx context.Context, id string) (domainpricing.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rules {
		if r.ID == id {
			return r, nil
		}
	}
	return domainpricing.Rule{}, domainpricing.ErrRuleNotFound
}

// Save inserts or replaces a rule. New rules get the next sequence number
// and a creation timestamp; updates keep both, so an edited rule does not
// jump ahead in tie-breaks.
func (s *RuleStore) Save(ctx context.Context, rule domainpricing.Rule) (domainpricing.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.rules {
		if existing.ID == rule.ID {
			rule.Seq = existing.Seq
			rule.CreatedAt = existing.CreatedAt
			s.rules[i] = rule
			return rule, nil
		}
	}
	s.seq++
	rule.Seq = s.seq
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = time.Now().UTC()
	}
	s.rules = append(s.rules, rule)
	return rule, nil
}

// Delete removes a rule or returns pricing.ErrRuleNotFound.
func (s *RuleStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rules {
		if r.ID == id {
			s.rules = append(s.rules[:i], s.rules[i+1:]...)
			return nil
		}
	}
	return domainpricing.ErrRuleNotFound
}

var _ domainpricing.RuleRepository = (*RuleStore)(nil)
