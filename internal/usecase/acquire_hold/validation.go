package acquire_hold

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/availability"
	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ServiceName) == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlot проверяет, что время является ещё не начавшимся слотом расписания
func validateSlot(
	schedule domain.DaySchedule,
	granularity int,
	date time.Time,
	slot types.TimeString,
	now time.Time,
	loc *time.Location,
) error {
	if !schedule.IsOpen {
		return fmt.Errorf("%w: closed on %s", ErrInvalidTimeSlot, date.Format(domain.DateFormat))
	}

	slots := availability.Generate(schedule, granularity)
	if !availability.Contains(slots, slot) {
		return fmt.Errorf("%w: %s is not a slot of %s", ErrInvalidTimeSlot, slot, date.Format(domain.DateFormat))
	}

	if !availability.Contains(availability.DropElapsed(date, []types.TimeString{slot}, now, loc), slot) {
		return fmt.Errorf("%w: %s %s has already started", ErrInvalidTimeSlot, date.Format(domain.DateFormat), slot)
	}

	return nil
}
