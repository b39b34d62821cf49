package policies

import (
	"context"

	"stayops/internal/domain/shared/events"
)

// RuleEvents publishes rule lifecycle events to interested collaborators
// (persistence sync, audit, channel managers). Publishing happens after the
// mutation and must never fail the command itself.
type RuleEvents interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}

// NoopRuleEvents discards events; used when no broker is configured.
type NoopRuleEvents struct{}

func (NoopRuleEvents) Publish(context.Context, events.DomainEvent) error { return nil }

var _ RuleEvents = NoopRuleEvents{}
