package commit_hold

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/sqlite"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
)

var testDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type fakeMetrics struct {
	mu      sync.Mutex
	results map[string]int
}

func (m *fakeMetrics) IncHold(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.results == nil {
		m.results = map[string]int{}
	}
	m.results[result]++
}

type fixture struct {
	store   *sqlite.CommitmentStore
	clock   *fixedTime
	metrics *fakeMetrics
	uc      *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &fixture{
		store:   sqlite.NewCommitmentStore(db),
		clock:   &fixedTime{now: time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)},
		metrics: &fakeMetrics{},
	}
	f.uc = NewUseCase(f.store, f.metrics, logger.NewNop())
	f.uc.timeProvider = f.clock
	return f
}

func (f *fixture) hold(t *testing.T, professional string) *domain.Hold {
	t.Helper()
	h := &domain.Hold{
		ID:           uuid.NewString(),
		Professional: professional,
		ServiceName:  "Corte",
		Date:         testDate,
		Time:         "09:00",
		CreatedAt:    f.clock.now,
		TTL:          10 * time.Minute,
	}
	inserted, err := f.store.InsertIfAbsent(context.Background(), domain.NewHoldCommitment(h))
	require.NoError(t, err)
	require.True(t, inserted)
	return h
}

func TestUseCase_CommitCreatesPendingAppointment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	h := f.hold(t, "p-1")

	f.clock.now = f.clock.now.Add(9 * time.Minute)

	resp, err := f.uc.Execute(ctx, &Request{HoldID: h.ID, ClientName: " Ana ", ClientPhone: "(11) 98765-4321"})
	require.NoError(t, err)
	assert.NotEqual(t, h.ID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Ana", resp.ClientName)
	assert.Equal(t, "p-1", resp.Professional)

	stored, err := f.store.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KindAppointment, stored.Kind)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Nil(t, stored.ExpiresAt)

	_, err = f.store.GetByID(ctx, h.ID)
	assert.Error(t, err, "hold row is gone")

	// повторное подтверждение того же холда
	_, err = f.uc.Execute(ctx, &Request{HoldID: h.ID, ClientName: "Ana"})
	assert.ErrorIs(t, err, ErrHoldNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, f.metrics.results["committed"])
}

func TestUseCase_CommitAfterTTL(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	h := f.hold(t, "p-1")

	f.clock.now = f.clock.now.Add(10 * time.Minute)

	_, err := f.uc.Execute(ctx, &Request{HoldID: h.ID, ClientName: "Ana"})
	assert.ErrorIs(t, err, ErrHoldExpired)
	assert.ErrorIs(t, err, domain.ErrExpired)

	list, err := f.store.List(ctx, domain.AppointmentFilter{})
	require.NoError(t, err)
	assert.Empty(t, list, "no appointment is produced")

	_, err = f.store.GetByID(ctx, h.ID)
	assert.Error(t, err, "expired hold is removed")
	assert.Equal(t, 1, f.metrics.results["expired"])
}

func TestUseCase_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.uc.Execute(ctx, &Request{HoldID: uuid.NewString(), ClientName: "Ana"})
	assert.ErrorIs(t, err, ErrHoldNotFound)

	_, err = f.uc.Execute(ctx, &Request{HoldID: "garbage", ClientName: "Ana"})
	assert.ErrorIs(t, err, ErrHoldNotFound)

	h := f.hold(t, "")
	_, err = f.uc.Execute(ctx, &Request{HoldID: h.ID, ClientName: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
