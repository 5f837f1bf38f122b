package get_available_slots

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ReservationEngine/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date               string   `json:"date"`
	Professional       string   `json:"professionalId,omitempty"`
	GranularityMinutes int      `json:"granularityMinutes"`
	IsOpen             bool     `json:"isOpen"`
	Slots              []string `json:"slots"` // ["09:00", "09:30", ...]
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(dateStr, professional string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:         date,
		Professional: strings.TrimSpace(professional),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:               resp.Date.Format(domain.DateFormat),
		Professional:       resp.Professional,
		GranularityMinutes: resp.GranularityMinutes,
		IsOpen:             resp.IsOpen,
		Slots:              slots,
	}
}
