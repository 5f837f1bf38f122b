package ledger

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// TransactionRepository интерфейс репозитория финансового журнала
type TransactionRepository interface {
	Insert(ctx context.Context, t *domain.Transaction) (bool, error)
	DeleteByAppointmentID(ctx context.Context, appointmentID string) (int64, error)
	List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error)
}

// IDGenerator генератор идентификаторов
type IDGenerator interface {
	NewID() string
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
