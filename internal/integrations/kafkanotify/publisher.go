package kafkanotify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// messageWriter часть *kafka.Writer, используемая публикатором
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher канал уведомлений, публикующий сообщения в топик Kafka.
// Доставку выполняет внешний потребитель топика
type Publisher struct {
	writer messageWriter
	topic  string
	now    func() time.Time
}

// NewPublisher создает публикатор. Ключ сообщения (номер телефона) выбирает партицию
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, ErrNotConfigured
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &Publisher{writer: writer, topic: topic, now: time.Now}, nil
}

// Name возвращает имя канала для метрик и логов
func (p *Publisher) Name() string {
	return "kafka"
}

// Send публикует сообщение для номера phone
func (p *Publisher) Send(ctx context.Context, phone, message string) error {
	msg, err := p.buildMessage(phone, message)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	return nil
}

// Close закрывает writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) buildMessage(phone, message string) (kafka.Message, error) {
	event := Event{
		EventID:     uuid.NewString(),
		To:          phone,
		Body:        message,
		RequestedAt: p.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("%w: encode event: %v", ErrPublish, err)
	}

	return kafka.Message{
		Topic: p.topic,
		Key:   []byte(phone),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.EventID)},
			{Key: "event_type", Value: []byte(EventType)},
		},
	}, nil
}
