package release_hold

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/sqlite"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
)

type countingMetrics struct{ released int }

func (m *countingMetrics) IncHold(result string) {
	if result == "released" {
		m.released++
	}
}

func TestUseCase_ReleaseIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	store := sqlite.NewCommitmentStore(db)

	hold := &domain.Hold{
		ID:          uuid.NewString(),
		ServiceName: "Corte",
		Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:        "09:00",
		CreatedAt:   time.Now(),
		TTL:         10 * time.Minute,
	}
	inserted, err := store.InsertIfAbsent(ctx, domain.NewHoldCommitment(hold))
	require.NoError(t, err)
	require.True(t, inserted)

	m := &countingMetrics{}
	uc := NewUseCase(store, m, logger.NewNop())

	released, err := uc.Execute(ctx, hold.ID)
	require.NoError(t, err)
	assert.True(t, released)

	released, err = uc.Execute(ctx, hold.ID)
	require.NoError(t, err)
	assert.False(t, released)

	released, err = uc.Execute(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.False(t, released)

	released, err = uc.Execute(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.False(t, released)

	assert.Equal(t, 1, m.released)

	// слот снова свободен
	inserted, err = store.InsertIfAbsent(ctx, domain.NewHoldCommitment(&domain.Hold{
		ID: uuid.NewString(), ServiceName: "Corte", Date: hold.Date, Time: hold.Time,
		CreatedAt: time.Now(), TTL: time.Minute,
	}))
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestUseCase_ReleaseDoesNotTouchAppointments(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	store := sqlite.NewCommitmentStore(db)

	appt := domain.NewAppointmentCommitment(&domain.Appointment{
		ID:          uuid.NewString(),
		ServiceName: "Corte",
		Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:        "09:00",
		ClientName:  "Ana",
		Status:      domain.StatusPending,
	})
	_, err = store.InsertIfAbsent(ctx, appt)
	require.NoError(t, err)

	released, err := NewUseCase(store, &countingMetrics{}, logger.NewNop()).Execute(ctx, appt.ID)
	require.NoError(t, err)
	assert.False(t, released)

	_, err = store.GetByID(ctx, appt.ID)
	assert.NoError(t, err)
}
