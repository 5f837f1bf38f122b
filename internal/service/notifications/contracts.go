package notifications

import "context"

// Channel канал доставки сообщений на телефон
type Channel interface {
	Name() string
	Send(ctx context.Context, phone, message string) error
}

// Metrics метрики уведомлений
type Metrics interface {
	IncNotification(channel, kind, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
