package domain

import "errors"

// Таксономия ошибок движка бронирования.
// Пакеты ниже оборачивают свои sentinel-ошибки в эти, чтобы обработчики могли
// опознать класс ошибки через errors.Is.
var (
	// ErrConflict слот уже занят (нужно заново запросить доступность)
	ErrConflict = errors.New("domain: slot is no longer free")

	// ErrExpired срок холда истёк (нужно заново захватить слот)
	ErrExpired = errors.New("domain: hold has expired")

	// ErrNotFound неизвестный идентификатор записи или холда
	ErrNotFound = errors.New("domain: not found")

	// ErrInvalidConfiguration некорректное расписание работы
	ErrInvalidConfiguration = errors.New("domain: invalid calendar configuration")

	// ErrTransitionNotAllowed переход статуса не разрешён таблицей переходов
	ErrTransitionNotAllowed = errors.New("domain: transition not allowed")
)
