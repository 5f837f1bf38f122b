package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// CommitmentRepository интерфейс хранилища записей
type CommitmentRepository interface {
	// ListByDateProfessional получает холды и записи на дату для специалиста (без отменённых)
	ListByDateProfessional(ctx context.Context, date time.Time, professional string) ([]*domain.Commitment, error)
}

// CalendarProvider источник расписания работы
type CalendarProvider interface {
	Current(ctx context.Context) (*domain.CalendarConfiguration, error)
}

// Catalog каталог специалистов
type Catalog interface {
	CheckProfessional(id string) error
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
