package broker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the part of kafka.Reader the consumer uses.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type KafkaConsumer struct {
	reader  MessageReader
	backoff time.Duration
}

func NewKafkaConsumer(brokers []string, groupID string, topic string) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}),
		backoff: time.Second,
	}
}

// Consume reads until ctx is done, handing every decoded event to handler. Handler
// errors are logged and the message is skipped.
func (c *KafkaConsumer) Consume(ctx context.Context, handler func(context.Context, *Event) error) error {
	defer c.reader.Close()
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			slog.Warn("kafka read error", slog.Any("error", err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.backoff):
			}
			continue
		}
		event := decodeMessage(m)
		slog.Info("kafka message consumed",
			slog.String("topic", m.Topic),
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
			slog.String("entity", event.Entity),
			slog.String("action", event.Action),
			slog.String("resourceId", event.ResourceID),
		)
		if err := handler(ctx, event); err != nil {
			slog.Warn("kafka handler error", slog.String("topic", event.Topic), slog.Any("error", err))
		}
	}
}

type rawEvent struct {
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId"`
	Topic      string            `json:"topic"`
	Metadata   map[string]string `json:"metadata"`
	Data       any               `json:"data"`
}

// decodeMessage accepts the {entity, action, data} envelope and falls back to the
// record topic for anything missing. Non-JSON values are kept as strings.
func decodeMessage(m kafka.Message) *Event {
	event := &Event{Timestamp: m.Time.UTC()}
	if m.Time.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	entity, action := splitTopic(m.Topic)
	var raw rawEvent
	if err := json.Unmarshal(m.Value, &raw); err != nil {
		event.Topic = m.Topic
		event.Entity = entity
		event.Action = action
		event.Data = string(m.Value)
		return event
	}

	event.Entity = firstNonEmpty(raw.Entity, entity)
	event.Action = firstNonEmpty(raw.Action, action)
	event.ResourceID = firstNonEmpty(raw.ResourceID, string(m.Key))
	event.Metadata = raw.Metadata
	event.Data = raw.Data
	if event.Data == nil {
		// Bare payloads without an envelope.
		var bare any
		_ = json.Unmarshal(m.Value, &bare)
		event.Data = bare
	}
	event.Topic = firstNonEmpty(raw.Topic, m.Topic)
	return event
}

func splitTopic(topic string) (string, string) {
	parts := strings.Split(strings.TrimSpace(topic), ".")
	if len(parts) >= 2 {
		entity := strings.TrimSpace(parts[len(parts)-2])
		action := strings.TrimSpace(parts[len(parts)-1])
		if entity != "" && action != "" {
			return entity, action
		}
	}
	return strings.TrimSpace(topic), "unknown"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
