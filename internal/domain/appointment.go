package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	// StatusHeld используется только холдами в хранилище, у записи такого статуса нет
	StatusHeld      AppointmentStatus = "held"
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// TransitionOutcome результат попытки перехода статуса
type TransitionOutcome string

const (
	OutcomeApplied    TransitionOutcome = "applied"     // статус изменён
	OutcomeNoop       TransitionOutcome = "noop"        // повторное подтверждение
	OutcomeNotAllowed TransitionOutcome = "not_allowed" // переход запрещён, ничего не изменено
)

// transitions таблица разрешённых переходов
var transitions = map[AppointmentStatus]map[AppointmentStatus]TransitionOutcome{
	StatusPending: {
		StatusConfirmed: OutcomeApplied,
		StatusCancelled: OutcomeApplied,
	},
	StatusConfirmed: {
		StatusConfirmed: OutcomeNoop,
		StatusCancelled: OutcomeApplied,
	},
}

// Transition возвращает результат перехода from -> to. Тотальная функция:
// всё, чего нет в таблице (включая любой выход из cancelled), даёт OutcomeNotAllowed
func Transition(from, to AppointmentStatus) TransitionOutcome {
	if outcome, ok := transitions[from][to]; ok {
		return outcome
	}
	return OutcomeNotAllowed
}

// ParseAppointmentStatus парсит статус записи (held не является статусом записи)
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch status := AppointmentStatus(s); status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

// Appointment запись клиента
type Appointment struct {
	ID           string
	Professional string // пустая строка: специалист не назначен
	ServiceName  string
	Date         time.Time
	Time         types.TimeString
	ClientName   string
	ClientPhone  string
	Status       AppointmentStatus
	ReminderSent bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// Key возвращает ключ слота записи
func (a *Appointment) Key() SlotKey {
	return SlotKey{Professional: a.Professional, Date: a.Date, Time: a.Time}
}

// DueAt момент начала записи в часовом поясе бизнеса
func (a *Appointment) DueAt(loc *time.Location) (time.Time, error) {
	return a.Time.On(a.Date, loc)
}

// AppointmentFilter фильтр для списка записей
type AppointmentFilter struct {
	Date         *time.Time         // конкретная дата (опционально)
	Professional *string            // специалист (опционально, "" означает без специалиста)
	Status       *AppointmentStatus // статус (опционально)
}

// SlotKey ключ ресурса (специалист × дата × время)
type SlotKey struct {
	Professional string
	Date         time.Time
	Time         types.TimeString
}

// String возвращает ключ в виде строки, пригодной для логов и блокировок
func (k SlotKey) String() string {
	professional := k.Professional
	if professional == "" {
		professional = "-"
	}
	return fmt.Sprintf("%s/%s/%s", professional, k.Date.Format(DateFormat), k.Time)
}

// DateOnly отбрасывает время и часовой пояс, оставляя календарную дату
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate сравнивает календарные даты
func SameDate(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
