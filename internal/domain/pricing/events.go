package pricing

import "time"

type RuleCreated struct {
	Rule Rule
	At   time.Time
}

func (e RuleCreated) EventName() string     { return "pricing.rule_created" }
func (e RuleCreated) AggregateID() string   { return e.Rule.ID }
func (e RuleCreated) OccurredAt() time.Time { return e.At }

type RuleUpdated struct {
	Rule Rule
	At   time.Time
}

func (e RuleUpdated) EventName() string     { return "pricing.rule_updated" }
func (e RuleUpdated) AggregateID() string   { return e.Rule.ID }
func (e RuleUpdated) OccurredAt() time.Time { return e.At }

type RuleDeleted struct {
	RuleID string
	At     time.Time
}

func (e RuleDeleted) EventName() string     { return "pricing.rule_deleted" }
func (e RuleDeleted) AggregateID() string   { return e.RuleID }
func (e RuleDeleted) OccurredAt() time.Time { return e.At }
