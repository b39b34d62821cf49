package events

import "time"

// DomainEvent is implemented by facts the core reports to collaborators
// after a mutation has been applied. Publishing is best-effort and happens
// outside the mutation itself.
type DomainEvent interface {
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}
