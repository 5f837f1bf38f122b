package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// CommitmentKind вид записи, занимающей слот
type CommitmentKind string

const (
	KindHold        CommitmentKind = "hold"
	KindAppointment CommitmentKind = "appointment"
)

// Commitment запись хранилища, которая может занимать ключ (специалист, дата, время).
// Это либо холд, либо запись клиента
type Commitment struct {
	ID           string
	Kind         CommitmentKind
	Professional string
	ServiceName  string
	Date         time.Time
	Time         types.TimeString
	ClientName   string
	ClientPhone  string
	Status       AppointmentStatus
	ReminderSent bool
	ExpiresAt    *time.Time // только для холдов
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewHoldCommitment строит запись хранилища из холда
func NewHoldCommitment(h *Hold) *Commitment {
	expiresAt := h.ExpiresAt()
	return &Commitment{
		ID:           h.ID,
		Kind:         KindHold,
		Professional: h.Professional,
		ServiceName:  h.ServiceName,
		Date:         DateOnly(h.Date),
		Time:         h.Time,
		Status:       StatusHeld,
		ExpiresAt:    &expiresAt,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.CreatedAt,
	}
}

// NewAppointmentCommitment строит запись хранилища из записи клиента
func NewAppointmentCommitment(a *Appointment) *Commitment {
	return &Commitment{
		ID:           a.ID,
		Kind:         KindAppointment,
		Professional: a.Professional,
		ServiceName:  a.ServiceName,
		Date:         DateOnly(a.Date),
		Time:         a.Time,
		ClientName:   a.ClientName,
		ClientPhone:  a.ClientPhone,
		Status:       a.Status,
		ReminderSent: a.ReminderSent,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// IsHold returns true for hold records
func (c *Commitment) IsHold() bool {
	return c.Kind == KindHold
}

// IsExpired returns true for a hold whose ttl has elapsed at now
func (c *Commitment) IsExpired(now time.Time) bool {
	return c.IsHold() && c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}

// Key возвращает ключ слота
func (c *Commitment) Key() SlotKey {
	return SlotKey{Professional: c.Professional, Date: c.Date, Time: c.Time}
}

// Occupies реализует предикат занятости слота.
// Слот занят, если запись не отменена, холд не истёк, совпадают дата и время и
// совпадает специалист. Пустой специалист совпадает только с пустым:
// записи без специалиста конкурируют только между собой
func (c *Commitment) Occupies(key SlotKey, now time.Time) bool {
	if c.Status == StatusCancelled || c.IsExpired(now) {
		return false
	}
	if !SameDate(c.Date, key.Date) || c.Time != key.Time {
		return false
	}
	return c.Professional == key.Professional
}

// ToAppointment возвращает запись клиента
func (c *Commitment) ToAppointment() *Appointment {
	return &Appointment{
		ID:           c.ID,
		Professional: c.Professional,
		ServiceName:  c.ServiceName,
		Date:         c.Date,
		Time:         c.Time,
		ClientName:   c.ClientName,
		ClientPhone:  c.ClientPhone,
		Status:       c.Status,
		ReminderSent: c.ReminderSent,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ToHold возвращает холд
func (c *Commitment) ToHold() *Hold {
	h := &Hold{
		ID:           c.ID,
		Professional: c.Professional,
		ServiceName:  c.ServiceName,
		Date:         c.Date,
		Time:         c.Time,
		CreatedAt:    c.CreatedAt,
	}
	if c.ExpiresAt != nil {
		h.TTL = c.ExpiresAt.Sub(c.CreatedAt)
	}
	return h
}
