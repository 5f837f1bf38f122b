package get_ledger

import (
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// TransactionResponse операция журнала
type TransactionResponse struct {
	ID            string  `json:"id"`
	AppointmentID *string `json:"appointmentId,omitempty"`
	Title         string  `json:"title"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	CreatedAt     string  `json:"createdAt"`
}

// SummaryResponse сводка за период
type SummaryResponse struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// LedgerResponse HTTP response model
type LedgerResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Summary      SummaryResponse       `json:"summary"`
}

// ToDomainFilter собирает фильтр из query параметров from, to (YYYY-MM-DD) и type
func ToDomainFilter(query url.Values) (domain.TransactionFilter, error) {
	var filter domain.TransactionFilter

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return filter, fmt.Errorf("from: %w", err)
		}
		filter.From = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return filter, fmt.Errorf("to: %w", err)
		}
		filter.To = &to
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return filter, fmt.Errorf("to %s is before from %s", query.Get("to"), query.Get("from"))
	}

	if typeStr := query.Get("type"); typeStr != "" {
		t := domain.TransactionType(typeStr)
		if !t.IsValid() {
			return filter, fmt.Errorf("unknown type %q", typeStr)
		}
		filter.Type = &t
	}

	return filter, nil
}

// FromDomainTransaction конвертирует операцию в HTTP response
func FromDomainTransaction(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		AppointmentID: t.AppointmentID,
		Title:         t.Title,
		Type:          string(t.Type),
		Amount:        t.Amount,
		Date:          t.Date.Format(domain.DateFormat),
		CreatedAt:     t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FromDomainLedger конвертирует список и сводку в HTTP response
func FromDomainLedger(transactions []*domain.Transaction, summary domain.LedgerSummary) *LedgerResponse {
	resp := &LedgerResponse{
		Transactions: make([]TransactionResponse, len(transactions)),
		Summary: SummaryResponse{
			Income:  summary.Income,
			Expense: summary.Expense,
			Balance: summary.Balance,
		},
	}

	for i, t := range transactions {
		resp.Transactions[i] = FromDomainTransaction(t)
	}

	return resp
}
