package port

import (
	"context"

	"dinesync/internal/modules/realtime/domain"
)

// Broadcaster sends messages to websocket clients.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}

// SessionDirectory tells whether a reservation session is live.
type SessionDirectory interface {
	Has(sessionID string) bool
}
