// Package kafka publishes generated risk documents to a Kafka topic so
// downstream consumers pick up new runs without polling the output files.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/NonGT/ddpm-tools/internal/domain"
	"github.com/NonGT/ddpm-tools/internal/observability"
)

// Publisher produces summary documents to the configured topic.
type Publisher struct {
	writer  *kafkago.Writer
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewPublisher creates a Kafka producer for the document topic.
func NewPublisher(brokers []string, topic string, logger *slog.Logger, metrics *observability.Metrics) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger, metrics: metrics}
}

// PublishSummary serializes and publishes one summary document. The key is
// the document kind so consumers compact per kind.
func (p *Publisher) PublishSummary(ctx context.Context, kind string, doc *domain.SummaryDocument) error {
	msg, err := serializeToMessage(kind, doc)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s document: %w", kind, err)
	}
	p.metrics.DocumentsPublished.Inc()
	p.logger.Info("document published", "kind", kind, "topic", p.writer.Topic)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals a summary document into a Kafka message.
func serializeToMessage(kind string, doc *domain.SummaryDocument) (kafkago.Message, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize %s document: %w", kind, err)
	}
	return kafkago.Message{
		Key:   []byte(kind),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "doc_type", Value: []byte(doc.Type)},
			{Key: "generated_at", Value: []byte(doc.Date.Format(time.RFC3339))},
		},
	}, nil
}
