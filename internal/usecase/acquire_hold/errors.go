package acquire_hold

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

var (
	// ErrSlotTaken возвращается, когда слот уже занят холдом или записью
	ErrSlotTaken = fmt.Errorf("acquire_hold: %w", domain.ErrConflict)

	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("acquire_hold: service not found")

	// ErrProfessionalNotFound возвращается, когда специалиста нет в каталоге
	ErrProfessionalNotFound = errors.New("acquire_hold: professional not found")

	// ErrInvalidTimeSlot возвращается, когда время не является слотом расписания или уже прошло
	ErrInvalidTimeSlot = errors.New("acquire_hold: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("acquire_hold: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("acquire_hold: internal error")
)
