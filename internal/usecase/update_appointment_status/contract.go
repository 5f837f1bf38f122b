package update_appointment_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/notifications"
)

// CommitmentRepository интерфейс хранилища записей
type CommitmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Commitment, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.AppointmentStatus, now time.Time) error
}

// Ledger проекция записей в финансовый журнал
type Ledger interface {
	OnConfirm(ctx context.Context, appointment *domain.Appointment, service *domain.Service) (bool, error)
	OnCancel(ctx context.Context, appointmentID string) (int64, error)
}

// Catalog каталог услуг
type Catalog interface {
	ServiceByName(name string) (*domain.Service, error)
}

// Notifier отправляет уведомление клиенту в фоне
type Notifier interface {
	Notify(kind notifications.Kind, a *domain.Appointment) bool
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics метрики переходов
type Metrics interface {
	IncTransition(from, to, outcome string)
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
