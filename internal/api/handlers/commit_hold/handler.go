package commit_hold

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationEngine/internal/api/handlers"
	commitHold "github.com/m04kA/SMC-ReservationEngine/internal/usecase/commit_hold"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgHoldNotFound       = "бронь не найдена, пожалуйста, выберите время заново"
	msgHoldExpired        = "время брони истекло, пожалуйста, выберите другое время"
	msgInvalidInput       = "некорректные данные клиента"
)

type Handler struct {
	useCase CommitHoldUseCase
	logger  Logger
}

func NewHandler(useCase CommitHoldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/holds/{holdId}/commit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	holdID := mux.Vars(r)["holdId"]

	var req CommitHoldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holds/{id}/commit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(holdID))
	if err != nil {
		switch {
		case errors.Is(err, commitHold.ErrHoldExpired):
			h.logger.Warn("POST /holds/{id}/commit - Hold expired: hold_id=%s", holdID)
			handlers.RespondGone(w, msgHoldExpired)

		case errors.Is(err, commitHold.ErrHoldNotFound):
			h.logger.Warn("POST /holds/{id}/commit - Hold not found: hold_id=%s", holdID)
			handlers.RespondNotFound(w, msgHoldNotFound)

		case errors.Is(err, commitHold.ErrInvalidInput):
			h.logger.Warn("POST /holds/{id}/commit - Invalid input: hold_id=%s, error=%v", holdID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /holds/{id}/commit - Failed to commit hold: hold_id=%s, error=%v", holdID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds/{id}/commit - Appointment created: hold_id=%s, appointment_id=%s", holdID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
