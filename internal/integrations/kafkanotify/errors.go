package kafkanotify

import "errors"

var (
	// ErrNotConfigured возвращается, когда не заданы брокеры или топик
	ErrNotConfigured = errors.New("kafkanotify: brokers or topic not configured")

	// ErrPublish возвращается, когда сообщение не удалось записать в топик
	ErrPublish = errors.New("kafkanotify: failed to publish message")
)
