package create_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

var (
	// ErrSlotTaken возвращается, когда слот уже занят холдом или записью
	ErrSlotTaken = fmt.Errorf("create_appointment: %w", domain.ErrConflict)

	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrProfessionalNotFound возвращается, когда специалиста нет в каталоге
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
