package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

type CalendarService interface {
	Current(ctx context.Context) (*domain.CalendarConfiguration, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
