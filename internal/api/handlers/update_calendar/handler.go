package update_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationEngine/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/calendar/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidData        = "некорректное расписание: интервалы должны идти по порядку и не пересекаться"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/calendar
// Расписание заменяется целиком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CalendarDTO
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /calendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cfg, err := req.ToDomainCalendar()
	if err != nil {
		h.logger.Warn("PUT /calendar - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.Replace(r.Context(), cfg)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidConfiguration):
			h.logger.Warn("PUT /calendar - Invalid calendar: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /calendar - Failed to replace calendar: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /calendar - Calendar replaced successfully")
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainCalendar(result))
}
