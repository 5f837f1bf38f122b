package notifications

import "errors"

var (
	// ErrInvalidConfig возвращается при некорректной настройке диспетчера
	ErrInvalidConfig = errors.New("notifications: invalid dispatcher config")
)
