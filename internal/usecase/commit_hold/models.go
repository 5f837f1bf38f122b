package commit_hold

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// Request модель запроса на подтверждение холда данными клиента
type Request struct {
	HoldID      string
	ClientName  string
	ClientPhone string
}

// Response модель ответа с созданной записью
type Response struct {
	ID           string
	Professional string
	ServiceName  string
	Date         time.Time
	Time         types.TimeString
	ClientName   string
	ClientPhone  string
	Status       string
	CreatedAt    time.Time
}
