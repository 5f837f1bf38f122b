package availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// Resolve возвращает свободные слоты из candidates в исходном порядке.
// Слот занят, если хотя бы одна запись занимает ключ (professional, date, slot) на момент now.
// Функция без побочных эффектов
func Resolve(
	date time.Time,
	professional string,
	candidates []types.TimeString,
	commitments []*domain.Commitment,
	now time.Time,
) []types.TimeString {
	free := make([]types.TimeString, 0, len(candidates))

	for _, slot := range candidates {
		key := domain.SlotKey{Professional: professional, Date: date, Time: slot}
		if !isTaken(key, commitments, now) {
			free = append(free, slot)
		}
	}

	return free
}

// isTaken проверяет, занят ли ключ хотя бы одной записью
func isTaken(key domain.SlotKey, commitments []*domain.Commitment, now time.Time) bool {
	for _, c := range commitments {
		if c.Occupies(key, now) {
			return true
		}
	}
	return false
}

// DropElapsed убирает слоты, которые уже начались.
// Для прошедшей даты возвращает пустой список, для будущей возвращает slots без изменений.
// now и date сравниваются в часовом поясе loc
func DropElapsed(date time.Time, slots []types.TimeString, now time.Time, loc *time.Location) []types.TimeString {
	localNow := now.In(loc)
	today := domain.DateOnly(localNow)
	day := domain.DateOnly(date)

	if day.Before(today) {
		return []types.TimeString{}
	}
	if day.After(today) {
		return slots
	}

	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		start, err := slot.On(date, loc)
		if err != nil {
			continue
		}
		if start.After(localNow) {
			result = append(result, slot)
		}
	}
	return result
}
