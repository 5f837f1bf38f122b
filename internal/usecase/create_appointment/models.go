package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// Request модель запроса оператора на создание подтверждённой записи
type Request struct {
	Professional string           // ID специалиста, пустая строка: без специалиста
	ServiceName  string           // Название услуги из каталога
	Date         time.Time        // Дата (без времени)
	Time         types.TimeString // Время начала
	ClientName   string
	ClientPhone  string
}

// Response модель ответа с созданной записью
type Response struct {
	ID            string
	Professional  string
	ServiceName   string
	Date          time.Time
	Time          types.TimeString
	ClientName    string
	ClientPhone   string
	Status        string
	LedgerCreated bool
	Notified      bool
	CreatedAt     time.Time
}
