package jobs

import "errors"

var (
	// ErrInvalidSchedule некорректное cron-выражение
	ErrInvalidSchedule = errors.New("jobs: invalid schedule")
)
