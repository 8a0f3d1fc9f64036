package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shenikar/flood_watch_system/internal/config"
	"github.com/sirupsen/logrus"
)

// Типы событий пайплайна
const (
	TypeReportVerified   = "report.verified"
	TypeIncidentCreated  = "incident.created"
	TypeIncidentResolved = "incident.resolved"
	TypeAlertSent        = "alert.sent"
)

// Event - одно событие пайплайна для downstream-аналитики
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// Publisher - интерфейс публикации событий пайплайна
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// KafkaPublisher публикует события в топик Kafka
type KafkaPublisher struct {
	writer *kafkago.Writer
	logger *logrus.Logger
}

// NewKafkaPublisher создает продюсер для сконфигурированного топика
func NewKafkaPublisher(cfg *config.Config, logger *logrus.Logger) *KafkaPublisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &KafkaPublisher{writer: w, logger: logger}
}

// Publish сериализует и отправляет событие в Kafka
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal pipeline event: %w", err)
	}
	msg := kafkago.Message{
		Key:   []byte(event.Type),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "occurred_at", Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish pipeline event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher используется, когда брокеры Kafka не сконфигурированы
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, _ Event) error { return nil }
