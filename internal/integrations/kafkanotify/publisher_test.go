package kafkanotify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func newTestPublisher(w messageWriter) *Publisher {
	return &Publisher{
		writer: w,
		topic:  "notifications",
		now:    func() time.Time { return time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC) },
	}
}

func TestPublisher_Send(t *testing.T) {
	w := &fakeWriter{}
	p := newTestPublisher(w)

	require.NoError(t, p.Send(context.Background(), "5511987654321", "Olá"))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "notifications", msg.Topic)
	assert.Equal(t, []byte("5511987654321"), msg.Key)

	var event Event
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, "5511987654321", event.To)
	assert.Equal(t, "Olá", event.Body)
	assert.NotEmpty(t, event.EventID)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, event.EventID, headers["event_id"])
	assert.Equal(t, EventType, headers["event_type"])
}

func TestPublisher_SendError(t *testing.T) {
	p := newTestPublisher(&fakeWriter{err: errors.New("broker down")})
	assert.ErrorIs(t, p.Send(context.Background(), "5511987654321", "Olá"), ErrPublish)
}

func TestNewPublisher_NotConfigured(t *testing.T) {
	_, err := NewPublisher(nil, "notifications")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewPublisher([]string{"localhost:9092"}, "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
