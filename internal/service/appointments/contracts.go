package appointments

import (
	"context"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// CommitmentRepository интерфейс хранилища записей
type CommitmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Commitment, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Commitment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
