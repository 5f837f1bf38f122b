package get_ledger

import (
	"context"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

type LedgerService interface {
	List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, domain.LedgerSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
