package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes JSON records to a single topic.
type KafkaPublisher struct {
	writer MessageWriter
	topic  string
}

// NewKafkaPublisher builds an asynchronous writer: WriteMessages returns once the
// record is queued and delivery errors are logged.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		Async:                  true,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				slog.Warn("kafka publish failed", slog.String("topic", topic), slog.Int("messages", len(messages)), slog.Any("error", err))
			}
		},
	}
	return &KafkaPublisher{writer: writer, topic: topic}
}

// NewPublisherWithWriter is used with custom writers.
func NewPublisherWithWriter(writer MessageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, topic: topic}
}

// Publish marshals value and writes it under key. Records with the same key keep
// their order.
func (p *KafkaPublisher) Publish(ctx context.Context, key string, headers map[string]string, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", p.topic, err)
	}
	msg := kafka.Message{Key: []byte(key), Value: body}
	for name, v := range headers {
		msg.Headers = append(msg.Headers, kafka.Header{Key: name, Value: []byte(v)})
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s record: %w", p.topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
