package reminders

import "errors"

var (
	// ErrSweepInProgress предыдущий проход ещё выполняется (здесь или на другом инстансе)
	ErrSweepInProgress = errors.New("reminders: sweep already in progress")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("reminders: internal error")
)
