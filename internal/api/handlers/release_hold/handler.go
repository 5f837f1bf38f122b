package release_hold

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationEngine/internal/api/handlers"
)

type Handler struct {
	useCase ReleaseHoldUseCase
	logger  Logger
}

func NewHandler(useCase ReleaseHoldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/holds/{holdId}
// Идемпотентно: неизвестный холд тоже даёт 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	holdID := mux.Vars(r)["holdId"]

	released, err := h.useCase.Execute(r.Context(), holdID)
	if err != nil {
		h.logger.Error("DELETE /holds/{id} - Failed to release hold: hold_id=%s, error=%v", holdID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /holds/{id} - Hold released: hold_id=%s, released=%t", holdID, released)
	w.WriteHeader(http.StatusNoContent)
}
