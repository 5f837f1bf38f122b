package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// TimeInterval интервал работы внутри одного дня, Start < End
type TimeInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// DaySchedule расписание одного дня недели
type DaySchedule struct {
	IsOpen    bool
	Intervals []TimeInterval // упорядочены и не пересекаются
}

// CalendarConfiguration недельное расписание работы (снимок, не изменяется движком)
type CalendarConfiguration struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// Weekdays порядок дней недели, начиная с понедельника
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// ForWeekday возвращает расписание на указанный день недели
func (c *CalendarConfiguration) ForWeekday(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return c.Monday
	case time.Tuesday:
		return c.Tuesday
	case time.Wednesday:
		return c.Wednesday
	case time.Thursday:
		return c.Thursday
	case time.Friday:
		return c.Friday
	case time.Saturday:
		return c.Saturday
	case time.Sunday:
		return c.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// ForDate возвращает расписание на день недели указанной даты
func (c *CalendarConfiguration) ForDate(date time.Time) DaySchedule {
	return c.ForWeekday(date.Weekday())
}

// SetWeekday заменяет расписание указанного дня
func (c *CalendarConfiguration) SetWeekday(weekday time.Weekday, schedule DaySchedule) {
	switch weekday {
	case time.Monday:
		c.Monday = schedule
	case time.Tuesday:
		c.Tuesday = schedule
	case time.Wednesday:
		c.Wednesday = schedule
	case time.Thursday:
		c.Thursday = schedule
	case time.Friday:
		c.Friday = schedule
	case time.Saturday:
		c.Saturday = schedule
	case time.Sunday:
		c.Sunday = schedule
	}
}

// Validate проверяет все дни недели
func (c *CalendarConfiguration) Validate() error {
	for _, weekday := range Weekdays {
		schedule := c.ForWeekday(weekday)
		if err := schedule.Validate(); err != nil {
			return fmt.Errorf("%s: %w", weekday, err)
		}
	}
	return nil
}

// Validate проверяет формат интервалов, start < end и отсутствие пересечений.
// Интервалы закрытого дня тоже проверяются: битая конфигурация не должна дожить до открытия дня
func (d DaySchedule) Validate() error {
	var prevEnd int

	for i, interval := range d.Intervals {
		start, err := interval.Start.Minutes()
		if err != nil {
			return fmt.Errorf("%w: interval #%d start: %v", ErrInvalidConfiguration, i+1, err)
		}

		end, err := interval.End.Minutes()
		if err != nil {
			return fmt.Errorf("%w: interval #%d end: %v", ErrInvalidConfiguration, i+1, err)
		}

		if start >= end {
			return fmt.Errorf("%w: interval #%d start %s must be before end %s",
				ErrInvalidConfiguration, i+1, interval.Start, interval.End)
		}

		if i > 0 && start < prevEnd {
			return fmt.Errorf("%w: interval #%d starting at %s overlaps or precedes the previous one",
				ErrInvalidConfiguration, i+1, interval.Start)
		}

		prevEnd = end
	}

	return nil
}
