package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

func open(intervals ...[2]string) domain.DaySchedule {
	day := domain.DaySchedule{IsOpen: true}
	for _, iv := range intervals {
		day.Intervals = append(day.Intervals, domain.TimeInterval{
			Start: types.TimeString(iv[0]),
			End:   types.TimeString(iv[1]),
		})
	}
	return day
}

func TestGenerate(t *testing.T) {
	t.Run("closed day", func(t *testing.T) {
		day := open([2]string{"09:00", "18:00"})
		day.IsOpen = false
		assert.Empty(t, Generate(day, 30))
	})

	t.Run("morning interval", func(t *testing.T) {
		got := Generate(open([2]string{"09:00", "12:00"}), 30)
		assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, got)
	})

	t.Run("afternoon bounds", func(t *testing.T) {
		got := Generate(open([2]string{"14:00", "19:00"}), 30)
		assert.Len(t, got, 10)
		assert.Contains(t, got, types.TimeString("14:00"))
		assert.Contains(t, got, types.TimeString("18:30"))
		assert.NotContains(t, got, types.TimeString("19:00"))
	})

	t.Run("no partial slot", func(t *testing.T) {
		got := Generate(open([2]string{"09:00", "10:45"}), 30)
		assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, got)
	})

	t.Run("intervals concatenated in order", func(t *testing.T) {
		got := Generate(open([2]string{"09:00", "10:00"}, [2]string{"13:00", "14:00"}), 30)
		assert.Equal(t, []types.TimeString{"09:00", "09:30", "13:00", "13:30"}, got)
	})

	t.Run("non-positive granularity", func(t *testing.T) {
		assert.Empty(t, Generate(open([2]string{"09:00", "12:00"}), 0))
		assert.Empty(t, Generate(open([2]string{"09:00", "12:00"}), -30))
	})

	t.Run("interval to end of day", func(t *testing.T) {
		got := Generate(open([2]string{"23:00", "23:59"}), 30)
		assert.Equal(t, []types.TimeString{"23:00"}, got)
	})

	t.Run("deterministic", func(t *testing.T) {
		day := open([2]string{"09:00", "18:00"})
		assert.Equal(t, Generate(day, 30), Generate(day, 30))
	})
}

func TestResolve(t *testing.T) {
	date := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)
	live := now.Add(5 * time.Minute)
	expired := now.Add(-time.Minute)

	candidates := []types.TimeString{"09:00", "09:30", "10:00", "10:30"}

	commitments := []*domain.Commitment{
		{Kind: domain.KindAppointment, Status: domain.StatusConfirmed, Professional: "a", Date: date, Time: "09:00"},
		{Kind: domain.KindAppointment, Status: domain.StatusCancelled, Professional: "a", Date: date, Time: "09:30"},
		{Kind: domain.KindHold, Status: domain.StatusHeld, Professional: "a", Date: date, Time: "10:00", ExpiresAt: &live},
		{Kind: domain.KindHold, Status: domain.StatusHeld, Professional: "a", Date: date, Time: "10:30", ExpiresAt: &expired},
		{Kind: domain.KindAppointment, Status: domain.StatusPending, Date: date, Time: "10:30"},
	}

	t.Run("professional a", func(t *testing.T) {
		got := Resolve(date, "a", candidates, commitments, now)
		assert.Equal(t, []types.TimeString{"09:30", "10:30"}, got)
	})

	t.Run("hold of a does not block b", func(t *testing.T) {
		got := Resolve(date, "b", candidates, commitments, now)
		assert.Equal(t, candidates, got)
	})

	t.Run("unassigned contends with unassigned only", func(t *testing.T) {
		got := Resolve(date, "", candidates, commitments, now)
		assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, got)
	})

	t.Run("hold expires at exactly now", func(t *testing.T) {
		got := Resolve(date, "a", []types.TimeString{"10:00"}, commitments, live)
		assert.Equal(t, []types.TimeString{"10:00"}, got)
	})

	t.Run("other date ignored", func(t *testing.T) {
		got := Resolve(date.AddDate(0, 0, 1), "a", candidates, commitments, now)
		assert.Equal(t, candidates, got)
	})
}

func TestDropElapsed(t *testing.T) {
	loc := time.UTC
	slots := []types.TimeString{"09:00", "09:30", "10:00", "10:30"}
	now := time.Date(2024, 3, 11, 9, 30, 0, 0, loc)

	assert.Empty(t, DropElapsed(time.Date(2024, 3, 10, 0, 0, 0, 0, loc), slots, now, loc))
	assert.Equal(t, slots, DropElapsed(time.Date(2024, 3, 12, 0, 0, 0, 0, loc), slots, now, loc))
	assert.Equal(t,
		[]types.TimeString{"10:00", "10:30"},
		DropElapsed(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), slots, now, loc),
	)
}

func TestContains(t *testing.T) {
	slots := []types.TimeString{"09:00", "09:30"}
	assert.True(t, Contains(slots, "09:30"))
	assert.False(t, Contains(slots, "10:00"))
}
