package availability

import (
	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// Generate разворачивает расписание дня в список времён начала слотов.
// Для каждого интервала по порядку выдаются start, start+g, ... пока слот целиком
// помещается в интервал. Интервалы склеиваются без дедупликации.
// Закрытый день или granularity <= 0 дают пустой список
func Generate(schedule domain.DaySchedule, granularityMinutes int) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if !schedule.IsOpen || granularityMinutes <= 0 {
		return slots
	}

	for _, interval := range schedule.Intervals {
		slots = append(slots, generateInterval(interval, granularityMinutes)...)
	}

	return slots
}

// generateInterval генерирует слоты одного интервала.
// Битый интервал не даёт слотов: конфигурация проверяется при сохранении
func generateInterval(interval domain.TimeInterval, granularityMinutes int) []types.TimeString {
	start, err := interval.Start.Minutes()
	if err != nil {
		return nil
	}
	end, err := interval.End.Minutes()
	if err != nil {
		return nil
	}

	var slots []types.TimeString
	for current := start; current < end; current += granularityMinutes {
		// Слот, не помещающийся целиком до конца интервала, не выдаётся
		if current+granularityMinutes > end {
			break
		}

		slot, err := types.FromMinutes(current)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

// Contains проверяет, что время является одним из слотов
func Contains(slots []types.TimeString, t types.TimeString) bool {
	for _, slot := range slots {
		if slot == t {
			return true
		}
	}
	return false
}
