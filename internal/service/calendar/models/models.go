package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// IntervalDTO интервал работы
type IntervalDTO struct {
	Start string `json:"start"` // "09:00"
	End   string `json:"end"`   // "18:00"
}

// DayDTO расписание дня
type DayDTO struct {
	IsOpen    bool          `json:"isOpen"`
	Intervals []IntervalDTO `json:"intervals"`
}

// CalendarDTO недельное расписание.
// Используется и как запрос на замену, и как ответ
type CalendarDTO struct {
	Monday    DayDTO `json:"monday"`
	Tuesday   DayDTO `json:"tuesday"`
	Wednesday DayDTO `json:"wednesday"`
	Thursday  DayDTO `json:"thursday"`
	Friday    DayDTO `json:"friday"`
	Saturday  DayDTO `json:"saturday"`
	Sunday    DayDTO `json:"sunday"`
}

func (c *CalendarDTO) day(weekday time.Weekday) *DayDTO {
	switch weekday {
	case time.Monday:
		return &c.Monday
	case time.Tuesday:
		return &c.Tuesday
	case time.Wednesday:
		return &c.Wednesday
	case time.Thursday:
		return &c.Thursday
	case time.Friday:
		return &c.Friday
	case time.Saturday:
		return &c.Saturday
	default:
		return &c.Sunday
	}
}

// Методы конвертации

// FromDomainCalendar конвертирует domain модель в DTO
func FromDomainCalendar(cfg *domain.CalendarConfiguration) *CalendarDTO {
	if cfg == nil {
		return nil
	}

	dto := &CalendarDTO{}
	for _, weekday := range domain.Weekdays {
		schedule := cfg.ForWeekday(weekday)

		day := dto.day(weekday)
		day.IsOpen = schedule.IsOpen
		day.Intervals = make([]IntervalDTO, len(schedule.Intervals))
		for i, interval := range schedule.Intervals {
			day.Intervals[i] = IntervalDTO{
				Start: interval.Start.String(),
				End:   interval.End.String(),
			}
		}
	}

	return dto
}

// ToDomainCalendar конвертирует DTO в domain модель.
// Проверяется только формат времени, остальное проверяет CalendarConfiguration.Validate
func (c *CalendarDTO) ToDomainCalendar() (*domain.CalendarConfiguration, error) {
	cfg := &domain.CalendarConfiguration{}

	for _, weekday := range domain.Weekdays {
		day := c.day(weekday)

		schedule := domain.DaySchedule{
			IsOpen:    day.IsOpen,
			Intervals: make([]domain.TimeInterval, 0, len(day.Intervals)),
		}
		for i, interval := range day.Intervals {
			start, err := types.NewTimeStringFromString(interval.Start)
			if err != nil {
				return nil, fmt.Errorf("%s interval #%d start: %w", weekday, i+1, err)
			}
			end, err := types.NewTimeStringFromString(interval.End)
			if err != nil {
				return nil, fmt.Errorf("%s interval #%d end: %w", weekday, i+1, err)
			}
			schedule.Intervals = append(schedule.Intervals, domain.TimeInterval{Start: start, End: end})
		}

		cfg.SetWeekday(weekday, schedule)
	}

	return cfg, nil
}
