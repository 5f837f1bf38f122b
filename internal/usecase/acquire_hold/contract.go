package acquire_hold

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// CommitmentRepository интерфейс хранилища записей
type CommitmentRepository interface {
	InsertIfAbsent(ctx context.Context, c *domain.Commitment) (bool, error)
	PurgeExpiredHolds(ctx context.Context, key *domain.SlotKey, now time.Time) (int64, error)
}

// CalendarProvider источник расписания работы
type CalendarProvider interface {
	Current(ctx context.Context) (*domain.CalendarConfiguration, error)
}

// Catalog каталог услуг и специалистов
type Catalog interface {
	ServiceByName(name string) (*domain.Service, error)
	CheckProfessional(id string) error
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
