package kafkanotify

import "time"

// EventType тип события в заголовке сообщения
const EventType = "notification.requested"

// Event тело сообщения в топике уведомлений
type Event struct {
	EventID     string    `json:"eventId"`
	To          string    `json:"to"`
	Body        string    `json:"body"`
	RequestedAt time.Time `json:"requestedAt"`
}
