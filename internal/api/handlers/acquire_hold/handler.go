package acquire_hold

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationEngine/internal/api/handlers"
	acquireHold "github.com/m04kA/SMC-ReservationEngine/internal/usecase/acquire_hold"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateTime      = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgSlotTaken            = "выбранное время уже занято, пожалуйста, выберите другое"
	msgServiceNotFound      = "услуга не найдена"
	msgProfessionalNotFound = "специалист не найден"
	msgInvalidTimeSlot      = "выбранное время недоступно для записи"
	msgInvalidInput         = "некорректные данные запроса"
)

type Handler struct {
	useCase AcquireHoldUseCase
	logger  Logger
}

func NewHandler(useCase AcquireHoldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/holds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AcquireHoldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holds - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /holds - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, acquireHold.ErrSlotTaken):
			h.logger.Warn("POST /holds - Slot taken: professional=%q, date=%s, time=%s",
				req.Professional, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, acquireHold.ErrServiceNotFound):
			h.logger.Warn("POST /holds - Service not found: service=%q", req.ServiceName)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, acquireHold.ErrProfessionalNotFound):
			h.logger.Warn("POST /holds - Professional not found: professional=%q", req.Professional)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, acquireHold.ErrInvalidTimeSlot):
			h.logger.Warn("POST /holds - Invalid time slot: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, acquireHold.ErrInvalidInput):
			h.logger.Warn("POST /holds - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /holds - Failed to acquire hold: professional=%q, date=%s, time=%s, error=%v",
				req.Professional, req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds - Hold acquired: hold_id=%s, professional=%q, date=%s, time=%s",
		result.HoldID, result.Professional, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
