package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrProfessionalNotFound возвращается, когда специалиста нет в каталоге
	ErrProfessionalNotFound = errors.New("catalog: professional not found")
)
