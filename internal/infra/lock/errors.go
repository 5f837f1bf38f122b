package lock

import "errors"

var (
	// ErrAcquire ошибка обращения к redis при захвате блокировки
	ErrAcquire = errors.New("lock: failed to acquire")
	// ErrRelease ошибка обращения к redis при освобождении блокировки
	ErrRelease = errors.New("lock: failed to release")
)
