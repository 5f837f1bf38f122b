package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// Hold временная бронь слота на время прохождения мастера записи
type Hold struct {
	ID           string
	Professional string
	ServiceName  string
	Date         time.Time
	Time         types.TimeString
	CreatedAt    time.Time
	TTL          time.Duration
}

// ExpiresAt момент истечения холда
func (h *Hold) ExpiresAt() time.Time {
	return h.CreatedAt.Add(h.TTL)
}

// IsExpired returns true if the hold ttl has elapsed at now
func (h *Hold) IsExpired(now time.Time) bool {
	return !now.Before(h.ExpiresAt())
}

// Key возвращает ключ слота холда
func (h *Hold) Key() SlotKey {
	return SlotKey{Professional: h.Professional, Date: h.Date, Time: h.Time}
}
