package usecase

import (
	"context"
	"time"

	"dinesync/internal/modules/realtime/application/port"
	"dinesync/internal/modules/realtime/domain"
	reservations "dinesync/internal/modules/reservations/domain"
)

// SessionNotifier streams the toasts of one reservation session to its websocket
// clients.
type SessionNotifier struct {
	broadcaster port.Broadcaster
	sessionID   string
	now         func() time.Time
}

func NewSessionNotifier(b port.Broadcaster, sessionID string) *SessionNotifier {
	return &SessionNotifier{broadcaster: b, sessionID: sessionID, now: time.Now}
}

func (n *SessionNotifier) Notify(note reservations.Notification) {
	n.broadcaster.Broadcast(context.Background(), domain.BuildNotificationMessage(n.sessionID, note, n.now()))
}
