package update_appointment_status

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	updateStatus "github.com/m04kA/SMC-ReservationEngine/internal/usecase/update_appointment_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // pending, confirmed или cancelled
}

// StatusResponse HTTP response model.
// Outcome: applied, noop или not_allowed (запись не изменена)
type StatusResponse struct {
	Outcome        string `json:"outcome"`
	ID             string `json:"id"`
	Professional   string `json:"professionalId,omitempty"`
	ServiceName    string `json:"service"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	ClientName     string `json:"clientName"`
	ClientPhone    string `json:"clientPhone"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previousStatus"`
	LedgerCreated  bool   `json:"ledgerCreated"`
	LedgerRemoved  int64  `json:"ledgerRemoved"`
	Notified       bool   `json:"notified"`
	UpdatedAt      string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateStatusRequest) ToUseCaseRequest(appointmentID string) *updateStatus.Request {
	return &updateStatus.Request{
		AppointmentID: appointmentID,
		Status:        strings.ToLower(strings.TrimSpace(r.Status)),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *StatusResponse {
	return &StatusResponse{
		Outcome:        string(resp.Outcome),
		ID:             resp.ID,
		Professional:   resp.Professional,
		ServiceName:    resp.ServiceName,
		Date:           resp.Date.Format(domain.DateFormat),
		Time:           resp.Time.String(),
		ClientName:     resp.ClientName,
		ClientPhone:    resp.ClientPhone,
		Status:         resp.Status,
		PreviousStatus: resp.PreviousStatus,
		LedgerCreated:  resp.LedgerCreated,
		LedgerRemoved:  resp.LedgerRemoved,
		Notified:       resp.Notified,
		UpdatedAt:      resp.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
