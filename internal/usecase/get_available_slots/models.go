package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// Config параметры генерации слотов
type Config struct {
	GranularityMinutes int            // шаг сетки слотов
	Location           *time.Location // часовой пояс бизнеса
}

// Request модель запроса на получение свободных слотов
type Request struct {
	Date         time.Time // Дата (без времени)
	Professional string    // ID специалиста, пустая строка: без специалиста
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date               time.Time
	Professional       string
	GranularityMinutes int
	IsOpen             bool               // работает ли бизнес в этот день
	Slots              []types.TimeString // свободные слоты в порядке расписания
}
