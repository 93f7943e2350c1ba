package infrastructure

import (
	"context"

	"dinesync/internal/modules/reservations/application/port"
)

// RecordPublisher writes keyed JSON records, e.g. broker.KafkaPublisher.
type RecordPublisher interface {
	Publish(ctx context.Context, key string, headers map[string]string, value any) error
}

// BrokerEventPublisher publishes flow events keyed by session so a session's events
// stay ordered.
type BrokerEventPublisher struct {
	records RecordPublisher
}

func NewBrokerEventPublisher(records RecordPublisher) *BrokerEventPublisher {
	return &BrokerEventPublisher{records: records}
}

func (p *BrokerEventPublisher) Publish(ctx context.Context, event port.FlowEvent) error {
	headers := map[string]string{"type": event.Type, "eventId": event.ID}
	return p.records.Publish(ctx, event.SessionID, headers, event)
}

var _ port.EventPublisher = (*BrokerEventPublisher)(nil)
