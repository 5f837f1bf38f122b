package create_ledger_entry

import (
	"context"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/ledger"
)

type LedgerService interface {
	CreateEntry(ctx context.Context, req *ledger.CreateEntryRequest) (*domain.Transaction, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
