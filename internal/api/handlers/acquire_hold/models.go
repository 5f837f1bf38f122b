package acquire_hold

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	acquireHold "github.com/m04kA/SMC-ReservationEngine/internal/usecase/acquire_hold"
	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// AcquireHoldRequest HTTP request model
type AcquireHoldRequest struct {
	Professional string `json:"professionalId,omitempty"`
	ServiceName  string `json:"service"`
	Date         string `json:"date"` // "2026-03-10"
	Time         string `json:"time"` // "09:30"
}

// HoldResponse HTTP response model
type HoldResponse struct {
	HoldID       string `json:"holdId"`
	Professional string `json:"professionalId,omitempty"`
	ServiceName  string `json:"service"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	ExpiresAt    string `json:"expiresAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AcquireHoldRequest) ToUseCaseRequest() (*acquireHold.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("time: %w", err)
	}

	return &acquireHold.Request{
		Professional: strings.TrimSpace(r.Professional),
		ServiceName:  strings.TrimSpace(r.ServiceName),
		Date:         date,
		Time:         slot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *acquireHold.Response) *HoldResponse {
	return &HoldResponse{
		HoldID:       resp.HoldID,
		Professional: resp.Professional,
		ServiceName:  resp.ServiceName,
		Date:         resp.Date.Format(domain.DateFormat),
		Time:         resp.Time.String(),
		ExpiresAt:    resp.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
