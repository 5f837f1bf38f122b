package update_calendar

import (
	"context"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

type CalendarService interface {
	Replace(ctx context.Context, cfg *domain.CalendarConfiguration) (*domain.CalendarConfiguration, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
