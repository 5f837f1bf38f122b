package calendar

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

var (
	// ErrInvalidCalendar возвращается при некорректном расписании
	ErrInvalidCalendar = fmt.Errorf("calendar: %w", domain.ErrInvalidConfiguration)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar: internal error")
)
