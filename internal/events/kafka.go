package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"restro-api/internal/domain"
)

// Publisher emits review events to the reviews topic. Construct it only when
// a broker is configured; the review service tolerates a nil publisher.
type Publisher struct {
	Writer *kafka.Writer
}

func NewPublisher(broker string) *Publisher {
	return &Publisher{
		Writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    "reviews",
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Publisher) PublishReviewCreated(ctx context.Context, event domain.ReviewCreatedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RestaurantID),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	return p.Writer.Close()
}
