package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	statuses := []AppointmentStatus{StatusPending, StatusConfirmed, StatusCancelled}

	allowed := map[[2]AppointmentStatus]TransitionOutcome{
		{StatusPending, StatusConfirmed}:   OutcomeApplied,
		{StatusPending, StatusCancelled}:   OutcomeApplied,
		{StatusConfirmed, StatusCancelled}: OutcomeApplied,
		{StatusConfirmed, StatusConfirmed}: OutcomeNoop,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want, ok := allowed[[2]AppointmentStatus{from, to}]
			if !ok {
				want = OutcomeNotAllowed
			}
			assert.Equal(t, want, Transition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTransition_CancelledIsTerminal(t *testing.T) {
	for _, to := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusHeld} {
		assert.Equal(t, OutcomeNotAllowed, Transition(StatusCancelled, to))
	}
}

func TestParseAppointmentStatus(t *testing.T) {
	status, err := ParseAppointmentStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseAppointmentStatus("held")
	assert.Error(t, err)

	_, err = ParseAppointmentStatus("done")
	assert.Error(t, err)
}

func TestAppointment_DueAt(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	a := &Appointment{Date: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), Time: "14:30"}
	due, err := a.DueAt(loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 11, 14, 30, 0, 0, loc), due)
}

func TestSlotKey_String(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "p1/2024-03-11/09:00", SlotKey{Professional: "p1", Date: date, Time: "09:00"}.String())
	assert.Equal(t, "-/2024-03-11/09:00", SlotKey{Date: date, Time: "09:00"}.String())
}

func TestSameDate(t *testing.T) {
	a := time.Date(2024, 3, 11, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	c := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, c))
}
