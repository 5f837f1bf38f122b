package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/sqlite"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/catalog"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

var (
	business = time.FixedZone("BRT", -3*60*60)
	tuesday  = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
)

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type staticCalendar struct{ cfg domain.CalendarConfiguration }

func (c staticCalendar) Current(context.Context) (*domain.CalendarConfiguration, error) {
	cfg := c.cfg
	return &cfg, nil
}

func testCalendar() domain.CalendarConfiguration {
	var cfg domain.CalendarConfiguration
	cfg.SetWeekday(time.Tuesday, domain.DaySchedule{
		IsOpen: true,
		Intervals: []domain.TimeInterval{
			{Start: "09:00", End: "12:00"},
			{Start: "14:00", End: "19:00"},
		},
	})
	cfg.SetWeekday(time.Sunday, domain.DaySchedule{IsOpen: false})
	return cfg
}

type fixture struct {
	store *sqlite.CommitmentStore
	clock *fixedTime
	uc    *UseCase
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &fixture{
		store: sqlite.NewCommitmentStore(db),
		clock: &fixedTime{now: now},
	}
	cat := catalog.NewService(domain.Catalog{
		Professionals: []domain.Professional{{ID: "p-1", Name: "Bruno"}, {ID: "p-2", Name: "Carla"}},
	})
	f.uc = NewUseCase(f.store, staticCalendar{cfg: testCalendar()}, cat, Config{
		GranularityMinutes: 30,
		Location:           business,
	}, logger.NewNop())
	f.uc.timeProvider = f.clock
	return f
}

func (f *fixture) insert(t *testing.T, c *domain.Commitment) {
	t.Helper()
	inserted, err := f.store.InsertIfAbsent(context.Background(), c)
	require.NoError(t, err)
	require.True(t, inserted)
}

func hold(professional string, tm types.TimeString, created time.Time) *domain.Commitment {
	return domain.NewHoldCommitment(&domain.Hold{
		ID:           uuid.NewString(),
		Professional: professional,
		ServiceName:  "Corte",
		Date:         tuesday,
		Time:         tm,
		CreatedAt:    created,
		TTL:          10 * time.Minute,
	})
}

func appointment(professional string, tm types.TimeString, status domain.AppointmentStatus) *domain.Commitment {
	return domain.NewAppointmentCommitment(&domain.Appointment{
		ID:           uuid.NewString(),
		Professional: professional,
		ServiceName:  "Corte",
		Date:         tuesday,
		Time:         tm,
		ClientName:   "Ana",
		Status:       status,
	})
}

func TestUseCase_FullDay(t *testing.T) {
	f := newFixture(t, time.Date(2026, 3, 9, 10, 0, 0, 0, business))

	resp, err := f.uc.Execute(context.Background(), &Request{Date: tuesday, Professional: "p-1"})
	require.NoError(t, err)

	assert.True(t, resp.IsOpen)
	assert.Equal(t, 30, resp.GranularityMinutes)
	require.Len(t, resp.Slots, 16)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Contains(t, resp.Slots, types.TimeString("14:00"))
	assert.Contains(t, resp.Slots, types.TimeString("18:30"))
	assert.NotContains(t, resp.Slots, types.TimeString("19:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("12:00"))
}

func TestUseCase_TakenSlotsArePerProfessional(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, business)
	f := newFixture(t, now)

	f.insert(t, appointment("p-1", "09:00", domain.StatusConfirmed))
	f.insert(t, hold("p-1", "09:30", now.Add(-time.Minute)))
	f.insert(t, hold("p-1", "10:00", now.Add(-time.Hour)))
	f.insert(t, appointment("p-1", "10:30", domain.StatusCancelled))
	f.insert(t, appointment("", "11:00", domain.StatusPending))

	resp, err := f.uc.Execute(context.Background(), &Request{Date: tuesday, Professional: "p-1"})
	require.NoError(t, err)
	assert.NotContains(t, resp.Slots, types.TimeString("09:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("09:30"))
	assert.Contains(t, resp.Slots, types.TimeString("10:00"), "expired hold does not block")
	assert.Contains(t, resp.Slots, types.TimeString("10:30"), "cancelled appointment does not block")
	assert.Contains(t, resp.Slots, types.TimeString("11:00"), "unassigned appointment does not block p-1")
	assert.Len(t, resp.Slots, 14)

	resp, err = f.uc.Execute(context.Background(), &Request{Date: tuesday, Professional: "p-2"})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 16)

	resp, err = f.uc.Execute(context.Background(), &Request{Date: tuesday})
	require.NoError(t, err)
	assert.NotContains(t, resp.Slots, types.TimeString("11:00"))
	assert.Len(t, resp.Slots, 15)
}

func TestUseCase_ClosedDay(t *testing.T) {
	f := newFixture(t, time.Date(2026, 3, 9, 10, 0, 0, 0, business))

	resp, err := f.uc.Execute(context.Background(), &Request{Date: sunday})
	require.NoError(t, err)
	assert.False(t, resp.IsOpen)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_TodayDropsStartedSlots(t *testing.T) {
	f := newFixture(t, time.Date(2026, 3, 10, 10, 15, 0, 0, business))

	resp, err := f.uc.Execute(context.Background(), &Request{Date: tuesday})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("10:30"), resp.Slots[0])
	assert.Len(t, resp.Slots, 13)
}

func TestUseCase_PastDate(t *testing.T) {
	f := newFixture(t, time.Date(2026, 3, 11, 8, 0, 0, 0, business))

	resp, err := f.uc.Execute(context.Background(), &Request{Date: tuesday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Errors(t *testing.T) {
	f := newFixture(t, time.Date(2026, 3, 9, 10, 0, 0, 0, business))

	_, err := f.uc.Execute(context.Background(), &Request{Date: tuesday, Professional: "ghost"})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)

	_, err = f.uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
