package broker

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// TopicHandler processes the events of one topic.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, event *Event) error
}

type HandlerRegistry struct {
	handlers map[string]TopicHandler
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[string]TopicHandler)}
}

func (r *HandlerRegistry) Register(h TopicHandler) {
	r.handlers[h.Topic()] = h
}

// Topics lists the registered topics.
func (r *HandlerRegistry) Topics() []string {
	topics := make([]string, 0, len(r.handlers))
	for topic := range r.handlers {
		topics = append(topics, topic)
	}
	return topics
}

// Dispatch routes event by topic. Events without a handler are ignored.
func (r *HandlerRegistry) Dispatch(ctx context.Context, event *Event) error {
	if handler, ok := r.handlers[event.Topic]; ok {
		return handler.Handle(ctx, event)
	}
	slog.Debug("kafka event without handler", slog.String("topic", event.Topic))
	return nil
}

// RunKafkaConsumers consumes every registered topic until ctx is done. Without brokers
// it returns immediately.
func RunKafkaConsumers(ctx context.Context, registry *HandlerRegistry, brokers []string, groupID string) error {
	if len(brokers) == 0 {
		return nil
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, topic := range registry.Topics() {
		consumer := NewKafkaConsumer(brokers, groupID, topic)
		g.Go(func() error {
			return consumer.Consume(ctx, registry.Dispatch)
		})
	}
	return g.Wait()
}
