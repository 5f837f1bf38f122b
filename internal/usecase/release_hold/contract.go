package release_hold

import (
	"context"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// CommitmentRepository интерфейс хранилища записей
type CommitmentRepository interface {
	Delete(ctx context.Context, id string, kind domain.CommitmentKind) (bool, error)
}

// Metrics метрики холдов
type Metrics interface {
	IncHold(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
