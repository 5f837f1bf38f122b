package create_appointment

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
	"github.com/m04kA/SMC-ReservationEngine/internal/service/ledger"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/notifications"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
	"github.com/m04kA/SMC-ReservationEngine/pkg/ptr"
	"github.com/m04kA/SMC-ReservationEngine/pkg/simpletxmanager"
)

var testDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type fakeNotifier struct{ kinds []notifications.Kind }

func (n *fakeNotifier) Notify(kind notifications.Kind, a *domain.Appointment) bool {
	n.kinds = append(n.kinds, kind)
	return true
}

type nopMetrics struct{}

func (nopMetrics) IncTransition(string, string, string) {}

type fixture struct {
	store        *sqlite.CommitmentStore
	transactions *sqlite.TransactionStore
	notifier     *fakeNotifier
	clock        *fixedTime
	uc           *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &fixture{
		store:        sqlite.NewCommitmentStore(db),
		transactions: sqlite.NewTransactionStore(db),
		notifier:     &fakeNotifier{},
		clock:        &fixedTime{now: time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)},
	}
	cat := catalog.NewService(domain.Catalog{
		Services:      []domain.Service{{ID: "s-1", Name: "Corte", Price: ptr.Ptr(45.0)}},
		Professionals: []domain.Professional{{ID: "p-1", Name: "Bruno"}},
	})
	f.uc = NewUseCase(f.store, ledger.NewService(f.transactions, logger.NewNop()), cat, f.notifier,
		simpletxmanager.NewTransactionManager(db), nopMetrics{}, logger.NewNop())
	f.uc.timeProvider = f.clock
	return f
}

func request() *Request {
	return &Request{
		Professional: "p-1",
		ServiceName:  "Corte",
		Date:         testDate,
		Time:         "09:00",
		ClientName:   "Ana",
		ClientPhone:  "11987654321",
	}
}

func TestUseCase_CreatesConfirmedAppointment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp, err := f.uc.Execute(ctx, request())
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.True(t, resp.LedgerCreated)
	assert.True(t, resp.Notified)
	assert.Equal(t, []notifications.Kind{notifications.KindConfirmed}, f.notifier.kinds)

	list, err := f.transactions.List(ctx, domain.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Corte - Ana", list[0].Title)

	_, err = f.uc.Execute(ctx, request())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)

	list, err = f.transactions.List(ctx, domain.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1, "conflict leaves the ledger untouched")
}

func TestUseCase_RespectsLiveHoldAndReplacesExpired(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	hold := &domain.Hold{
		ID:           uuid.NewString(),
		Professional: "p-1",
		ServiceName:  "Corte",
		Date:         testDate,
		Time:         "09:00",
		CreatedAt:    f.clock.now.Add(-5 * time.Minute),
		TTL:          10 * time.Minute,
	}
	_, err := f.store.InsertIfAbsent(ctx, domain.NewHoldCommitment(hold))
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, request())
	assert.ErrorIs(t, err, ErrSlotTaken)

	f.clock.now = f.clock.now.Add(5 * time.Minute)

	_, err = f.uc.Execute(ctx, request())
	assert.NoError(t, err)
}

func TestUseCase_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := request()
	req.ServiceName = "Manicure"
	_, err := f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	req = request()
	req.Professional = "ghost"
	_, err = f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)

	req = request()
	req.ClientName = ""
	_, err = f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = request()
	req.Time = "25:00"
	_, err = f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
