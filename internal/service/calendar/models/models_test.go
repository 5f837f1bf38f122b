package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

func TestCalendarDTO_ToDomainCalendar(t *testing.T) {
	dto := &CalendarDTO{
		Tuesday: DayDTO{IsOpen: true, Intervals: []IntervalDTO{{Start: "9:00", End: "12:00"}, {Start: "14:00", End: "19:00"}}},
	}

	cfg, err := dto.ToDomainCalendar()
	require.NoError(t, err)

	tuesday := cfg.ForWeekday(time.Tuesday)
	assert.True(t, tuesday.IsOpen)
	assert.Equal(t, []domain.TimeInterval{{Start: "09:00", End: "12:00"}, {Start: "14:00", End: "19:00"}}, tuesday.Intervals)
	assert.False(t, cfg.ForWeekday(time.Sunday).IsOpen)

	back := FromDomainCalendar(cfg)
	assert.Equal(t, "09:00", back.Tuesday.Intervals[0].Start)
	assert.Empty(t, back.Monday.Intervals)
}

func TestCalendarDTO_MalformedTime(t *testing.T) {
	dto := &CalendarDTO{Friday: DayDTO{IsOpen: true, Intervals: []IntervalDTO{{Start: "09:00", End: "25:00"}}}}

	_, err := dto.ToDomainCalendar()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Friday interval #1 end")
}
