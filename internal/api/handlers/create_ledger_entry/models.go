package create_ledger_entry

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/ledger"
)

// CreateEntryRequest HTTP request model
type CreateEntryRequest struct {
	Title  string  `json:"title"`
	Type   string  `json:"type"` // income или expense
	Amount float64 `json:"amount"`
	Date   string  `json:"date"` // "2026-03-10"
}

// EntryResponse HTTP response model
type EntryResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateEntryRequest) ToServiceRequest() (*ledger.CreateEntryRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &ledger.CreateEntryRequest{
		Title:  r.Title,
		Type:   domain.TransactionType(r.Type),
		Amount: r.Amount,
		Date:   date,
	}, nil
}

// FromDomainTransaction конвертирует операцию в HTTP response
func FromDomainTransaction(t *domain.Transaction) *EntryResponse {
	return &EntryResponse{
		ID:        t.ID,
		Title:     t.Title,
		Type:      string(t.Type),
		Amount:    t.Amount,
		Date:      t.Date.Format(domain.DateFormat),
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
	}
}
