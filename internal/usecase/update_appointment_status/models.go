package update_appointment_status

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// Request модель запроса на смену статуса
type Request struct {
	AppointmentID string
	Status        string // pending, confirmed или cancelled
}

// Response модель ответа. При OutcomeNotAllowed запись возвращается без изменений
type Response struct {
	Outcome        domain.TransitionOutcome
	ID             string
	Professional   string
	ServiceName    string
	Date           time.Time
	Time           types.TimeString
	ClientName     string
	ClientPhone    string
	Status         string
	PreviousStatus string
	LedgerCreated  bool  // создан доход при подтверждении
	LedgerRemoved  int64 // удалено операций при отмене
	Notified       bool  // уведомление поставлено в очередь
	UpdatedAt      time.Time
}
