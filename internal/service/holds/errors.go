package holds

import "errors"

var (
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("holds: internal error")
)
