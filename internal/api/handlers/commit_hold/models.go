package commit_hold

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	commitHold "github.com/m04kA/SMC-ReservationEngine/internal/usecase/commit_hold"
)

// CommitHoldRequest HTTP request model
type CommitHoldRequest struct {
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID           string `json:"id"`
	Professional string `json:"professionalId,omitempty"`
	ServiceName  string `json:"service"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	ClientName   string `json:"clientName"`
	ClientPhone  string `json:"clientPhone"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CommitHoldRequest) ToUseCaseRequest(holdID string) *commitHold.Request {
	return &commitHold.Request{
		HoldID:      holdID,
		ClientName:  strings.TrimSpace(r.ClientName),
		ClientPhone: strings.TrimSpace(r.ClientPhone),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *commitHold.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           resp.ID,
		Professional: resp.Professional,
		ServiceName:  resp.ServiceName,
		Date:         resp.Date.Format(domain.DateFormat),
		Time:         resp.Time.String(),
		ClientName:   resp.ClientName,
		ClientPhone:  resp.ClientPhone,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
