package domain

import (
	"strings"
	"time"

	reservations "dinesync/internal/modules/reservations/domain"
)

// NotificationPayload is the data of a toast message.
type NotificationPayload struct {
	Kind    reservations.NotificationKind `json:"kind"`
	Message string                        `json:"message"`
	State   reservations.State            `json:"state"`
}

// BuildNotificationMessage wraps a flow notification addressed to one session.
func BuildNotificationMessage(sessionID string, n reservations.Notification, at time.Time) *Message {
	return &Message{
		Topic:    NotificationTopic(string(n.Kind)),
		Entity:   NotificationEntity,
		Action:   string(n.Kind),
		Metadata: sessionMetadata(sessionID),
		Data: NotificationPayload{
			Kind:    n.Kind,
			Message: n.Message,
			State:   n.State,
		},
		Timestamp: at.UTC(),
	}
}

// BuildConnectedMessage greets a freshly attached client.
func BuildConnectedMessage(sessionID string, topics []string, at time.Time) *Message {
	return &Message{
		Topic:    TopicSystemConnected,
		Entity:   SystemEntity,
		Action:   ActionConnected,
		Metadata: sessionMetadata(sessionID),
		Data: map[string]any{
			"sessionId": strings.TrimSpace(sessionID),
			"topics":    topics,
		},
		Timestamp: at.UTC(),
	}
}

func BuildPongMessage(at time.Time) *Message {
	return &Message{Topic: TopicSystemPong, Entity: SystemEntity, Action: ActionPong, Timestamp: at.UTC()}
}

// BuildErrorMessage reports a rejected client command.
func BuildErrorMessage(reason string, at time.Time) *Message {
	return &Message{
		Topic:     TopicSystemError,
		Entity:    SystemEntity,
		Action:    ActionError,
		Data:      map[string]string{"error": reason},
		Timestamp: at.UTC(),
	}
}

func sessionMetadata(sessionID string) map[string]string {
	trimmed := strings.TrimSpace(sessionID)
	if trimmed == "" {
		return nil
	}
	return map[string]string{MetadataSessionID: trimmed}
}
