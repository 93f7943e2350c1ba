package port

import (
	"context"
	"time"

	"dinesync/internal/modules/reservations/domain"
)

// Notifier delivers toasts for one session. Delivery is fire-and-forget.
type Notifier interface {
	Notify(n domain.Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n domain.Notification)

func (f NotifierFunc) Notify(n domain.Notification) { f(n) }

const (
	EventReservationSubmitted = "reservation.submitted"
	EventOrderFinalized       = "order.finalized"
)

// FlowEvent is published on notable flow transitions.
type FlowEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	SessionID  string    `json:"sessionId"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data"`
}

// EventPublisher hands flow events to an external system. Failures never affect the
// flow.
type EventPublisher interface {
	Publish(ctx context.Context, event FlowEvent) error
}
