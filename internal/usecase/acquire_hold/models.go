package acquire_hold

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// Config параметры холдов
type Config struct {
	TTL                time.Duration  // время жизни холда
	GranularityMinutes int            // шаг сетки слотов
	Location           *time.Location // часовой пояс бизнеса
}

// Request модель запроса на захват слота
type Request struct {
	Professional string           // ID специалиста, пустая строка: без специалиста
	ServiceName  string           // Название услуги из каталога
	Date         time.Time        // Дата (без времени)
	Time         types.TimeString // Время начала слота
}

// Response модель ответа с созданным холдом
type Response struct {
	HoldID       string
	Professional string
	ServiceName  string
	Date         time.Time
	Time         types.TimeString
	ExpiresAt    time.Time
}
