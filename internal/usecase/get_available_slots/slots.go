package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/availability"
	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// freeSlots строит сетку слотов дня, убирает уже начавшиеся и занятые
func freeSlots(
	schedule domain.DaySchedule,
	granularity int,
	date time.Time,
	professional string,
	commitments []*domain.Commitment,
	now time.Time,
	loc *time.Location,
) []types.TimeString {
	// Шаг 1: все слоты расписания
	candidates := availability.Generate(schedule, granularity)

	// Шаг 2: прошедшая дата пустая, для сегодняшней только слоты позже now
	candidates = availability.DropElapsed(date, candidates, now, loc)

	// Шаг 3: убираем занятые
	return availability.Resolve(date, professional, candidates, commitments, now)
}
