package domain

import "time"

// Default configuration values
const (
	DefaultSlotGranularityMinutes = 30
	DefaultHoldTTL                = 10 * time.Minute
	DefaultReminderWindow         = 30 * time.Minute
	DefaultReminderSchedule       = "@every 60s"
	DefaultHoldSweepSchedule      = "@every 1m"
	DefaultTimezone               = "America/Sao_Paulo"
)

// Business validation constants
const (
	MinSlotGranularityMinutes = 5
	MaxSlotGranularityMinutes = 240
	MinPhoneDigits            = 10
	MaxClientNameLength       = 120
	MaxTitleLength            = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, занимающие слот
// Используется для фильтрации при подсчёте доступных слотов
var ActiveStatuses = []AppointmentStatus{
	StatusHeld,
	StatusPending,
	StatusConfirmed,
}
