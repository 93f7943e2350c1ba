package infrastructure

import (
	"context"
	"log/slog"

	"dinesync/internal/modules/reservations/application/port"
	"dinesync/internal/modules/reservations/domain"
)

// LogNotifier mirrors toasts into the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger, sessionID string) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger.With(slog.String("sessionId", sessionID))}
}

func (n *LogNotifier) Notify(msg domain.Notification) {
	n.logger.Info("notification",
		slog.String("kind", string(msg.Kind)),
		slog.String("message", msg.Message),
		slog.String("state", msg.State.String()),
	)
}

// Fanout delivers every notification to each sink in order. Nil sinks are skipped.
type Fanout []port.Notifier

func (f Fanout) Notify(msg domain.Notification) {
	for _, sink := range f {
		if sink != nil {
			sink.Notify(msg)
		}
	}
}

// NoopPublisher drops flow events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, port.FlowEvent) error { return nil }

var (
	_ port.Notifier       = (*LogNotifier)(nil)
	_ port.Notifier       = Fanout(nil)
	_ port.EventPublisher = NoopPublisher{}
)
