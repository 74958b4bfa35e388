// Package events publishes ledger events to Kafka. Publication is best
// effort: the ledger append has already persisted before the event goes out,
// and a broker failure is logged, not surfaced.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bizscale/bizscale-api/internal/domain/repository"
	"github.com/segmentio/kafka-go"
)

// TransactionRecorded is emitted after a ledger entry is appended and the
// state has been persisted.
type TransactionRecorded struct {
	TransactionID string    `json:"transaction_id"`
	BusinessName  string    `json:"business_name"`
	BusinessType  string    `json:"business_type"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	Date          string    `json:"date"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// KafkaPublisher writes events to a single topic.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{Value: data})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, any) error { return nil }
func (NoopPublisher) Close() error                       { return nil }

var _ repository.EventPublisher = (*KafkaPublisher)(nil)
var _ repository.EventPublisher = NoopPublisher{}
