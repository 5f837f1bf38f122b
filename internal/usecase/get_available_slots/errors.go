package get_available_slots

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда специалиста нет в каталоге
	ErrProfessionalNotFound = errors.New("get_available_slots: professional not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
