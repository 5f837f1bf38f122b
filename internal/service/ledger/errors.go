package ledger

import "errors"

var (
	// ErrInvalidInput возвращается при некорректной ручной операции
	ErrInvalidInput = errors.New("ledger: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("ledger: internal error")
)
