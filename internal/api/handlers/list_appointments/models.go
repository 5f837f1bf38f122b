package list_appointments

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/appointments/models"
)

// ToServiceRequest собирает фильтр из query параметров.
// Параметр professionalId присутствует, но пуст: записи без специалиста
func ToServiceRequest(query url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if values, ok := query["professionalId"]; ok && len(values) > 0 {
		professional := values[0]
		req.Professional = &professional
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}
