package producer

import (
	"context"

	"go-encash/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// publishEvent mengirim satu outbox row ke topic-nya. Key pakai encashment id
// supaya semua event untuk satu request mendarat di partition yang sama.
func publishEvent(ctx context.Context, writer *kafkago.Writer, event kafka.OutboxEvent) error {
	headers := []kafkago.Header{
		{Key: "event_type", Value: []byte(event.EventType)},
	}
	if event.RequestID != "" {
		headers = append(headers, kafkago.Header{
			Key:   "request_id",
			Value: []byte(event.RequestID),
		})
	}

	return writer.WriteMessages(ctx, kafkago.Message{
		Topic:   event.Topic,
		Key:     []byte(event.AggregateID),
		Value:   event.Payload,
		Headers: headers,
	})
}
