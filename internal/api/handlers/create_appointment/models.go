package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	createAppointment "github.com/m04kA/SMC-ReservationEngine/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Professional string `json:"professionalId,omitempty"`
	ServiceName  string `json:"service"`
	Date         string `json:"date"` // "2026-03-10"
	Time         string `json:"time"` // "09:30"
	ClientName   string `json:"clientName"`
	ClientPhone  string `json:"clientPhone"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            string `json:"id"`
	Professional  string `json:"professionalId,omitempty"`
	ServiceName   string `json:"service"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	ClientName    string `json:"clientName"`
	ClientPhone   string `json:"clientPhone"`
	Status        string `json:"status"`
	LedgerCreated bool   `json:"ledgerCreated"`
	Notified      bool   `json:"notified"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	start, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("time: %w", err)
	}

	return &createAppointment.Request{
		Professional: strings.TrimSpace(r.Professional),
		ServiceName:  strings.TrimSpace(r.ServiceName),
		Date:         date,
		Time:         start,
		ClientName:   strings.TrimSpace(r.ClientName),
		ClientPhone:  strings.TrimSpace(r.ClientPhone),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		Professional:  resp.Professional,
		ServiceName:   resp.ServiceName,
		Date:          resp.Date.Format(domain.DateFormat),
		Time:          resp.Time.String(),
		ClientName:    resp.ClientName,
		ClientPhone:   resp.ClientPhone,
		Status:        resp.Status,
		LedgerCreated: resp.LedgerCreated,
		Notified:      resp.Notified,
		CreatedAt:     resp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
