package get_ledger

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationEngine/internal/api/handlers"
)

const (
	msgInvalidParams = "некорректные параметры запроса: from, to (YYYY-MM-DD), type (income или expense)"
)

type Handler struct {
	service LedgerService
	logger  Logger
}

func NewHandler(service LedgerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/ledger
// Query params: from, to, type (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := ToDomainFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /ledger - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	transactions, summary, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /ledger - Failed to list ledger: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /ledger - Ledger retrieved successfully: count=%d, balance=%.2f",
		len(transactions), summary.Balance)
	handlers.RespondJSON(w, http.StatusOK, FromDomainLedger(transactions, summary))
}
