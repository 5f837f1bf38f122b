package reminders

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/infra/lock"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/notifications"
)

// CommitmentRepository интерфейс хранилища записей
type CommitmentRepository interface {
	ListReminderCandidates(ctx context.Context, fromDate time.Time) ([]*domain.Commitment, error)
	MarkReminderSent(ctx context.Context, id string, now time.Time) (bool, error)
}

// Notifier отправляет уведомление в фоне
type Notifier interface {
	Notify(kind notifications.Kind, a *domain.Appointment) bool
}

// Locker блокировка между инстансами
type Locker interface {
	TryLock(ctx context.Context, name string, ttl time.Duration) (lock.ReleaseFunc, bool, error)
}

// Metrics метрики напоминаний
type Metrics interface {
	IncReminder()
	ObserveSweep(seconds float64)
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

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
