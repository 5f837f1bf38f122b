package commit_hold

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// CommitmentRepository интерфейс хранилища записей
type CommitmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Commitment, error)
	Delete(ctx context.Context, id string, kind domain.CommitmentKind) (bool, error)
	PromoteHold(ctx context.Context, holdID string, appointment *domain.Appointment, now time.Time) (bool, error)
}

// Metrics метрики холдов
type Metrics interface {
	IncHold(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
