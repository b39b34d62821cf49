package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"

	"stayops/internal/app/policies"
	"stayops/internal/domain/shared/events"
)

// Producer publishes rule change notifications with idempotent, all-acks
// delivery. Idempotence needs a single in-flight request per broker.
type Producer struct {
	sync sarama.SyncProducer
}

func NewProducer(brokers []string, cfg *sarama.Config) (*Producer, error) {
	if cfg == nil {
		cfg = sarama.NewConfig()
		cfg.Version = sarama.V2_5_0_0
	}
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1
	sync, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Producer{sync: sync}, nil
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload []byte, headers map[string]string) error {
	hs := make([]sarama.RecordHeader, 0, len(headers))
	for k, v := range headers {
		hs = append(hs, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}
	_, _, err := p.sync.SendMessage(&sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(payload),
		Headers: hs,
	})
	return err
}

func (p *Producer) Close() error {
	if p.sync == nil {
		return nil
	}
	return p.sync.Close()
}

const rulesTopic = "pricing.rules"

// RuleEventsPublisher adapts the producer to the RuleEvents port. Events are
// JSON envelopes keyed by rule id so consumers see per-rule ordering.
type RuleEventsPublisher struct {
	Producer    *Producer
	TopicPrefix string
}

type ruleEventEnvelope struct {
	Event      string    `json:"event"`
	RuleID     string    `json:"rule_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

func (p RuleEventsPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	envelope := ruleEventEnvelope{
		Event:      event.EventName(),
		RuleID:     event.AggregateID(),
		OccurredAt: event.OccurredAt(),
		Payload:    event,
	}
	raw, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	return p.Producer.Publish(ctx, p.TopicPrefix+rulesTopic, event.AggregateID(), raw, map[string]string{
		"event": event.EventName(),
	})
}

var _ policies.RuleEvents = RuleEventsPublisher{}
