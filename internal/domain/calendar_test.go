package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

func interval(start, end string) TimeInterval {
	return TimeInterval{Start: types.TimeString(start), End: types.TimeString(end)}
}

func TestDaySchedule_Validate(t *testing.T) {
	cases := []struct {
		name    string
		day     DaySchedule
		wantErr bool
	}{
		{name: "closed empty", day: DaySchedule{}},
		{name: "single", day: DaySchedule{IsOpen: true, Intervals: []TimeInterval{interval("09:00", "18:00")}}},
		{name: "split", day: DaySchedule{IsOpen: true, Intervals: []TimeInterval{interval("09:00", "12:00"), interval("13:00", "18:00")}}},
		{name: "adjacent", day: DaySchedule{IsOpen: true, Intervals: []TimeInterval{interval("09:00", "12:00"), interval("12:00", "18:00")}}},
		{name: "start equals end", day: DaySchedule{IsOpen: true, Intervals: []TimeInterval{interval("09:00", "09:00")}}, wantErr: true},
		{name: "inverted", day: DaySchedule{IsOpen: true, Intervals: []TimeInterval{interval("18:00", "09:00")}}, wantErr: true},
		{name: "overlap", day: DaySchedule{IsOpen: true, Intervals: []TimeInterval{interval("09:00", "13:00"), interval("12:00", "18:00")}}, wantErr: true},
		{name: "bad format", day: DaySchedule{IsOpen: true, Intervals: []TimeInterval{interval("9h", "18:00")}}, wantErr: true},
		{name: "closed with broken interval", day: DaySchedule{Intervals: []TimeInterval{interval("18:00", "09:00")}}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.day.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCalendarConfiguration_ForDate(t *testing.T) {
	var cfg CalendarConfiguration
	cfg.SetWeekday(time.Saturday, DaySchedule{IsOpen: true, Intervals: []TimeInterval{interval("09:00", "14:00")}})

	// 2024-03-16 суббота
	saturday := cfg.ForDate(time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC))
	require.True(t, saturday.IsOpen)
	assert.Equal(t, types.TimeString("14:00"), saturday.Intervals[0].End)

	assert.False(t, cfg.ForDate(time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)).IsOpen)
}

func TestCalendarConfiguration_ValidateNamesWeekday(t *testing.T) {
	var cfg CalendarConfiguration
	cfg.SetWeekday(time.Wednesday, DaySchedule{IsOpen: true, Intervals: []TimeInterval{interval("10:00", "09:00")}})

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "Wednesday")
}
