package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
)

func TestScheduler_AddRejectsInvalidSchedule(t *testing.T) {
	s := NewScheduler(time.UTC, time.Second, logger.NewNop())

	err := s.Add("broken", "every minute please", func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestParser_AcceptsConfiguredForms(t *testing.T) {
	for _, spec := range []string{"@every 60s", "@every 1m", "*/5 * * * *", "0 */5 * * * *", "@hourly"} {
		_, err := Parser.Parse(spec)
		assert.NoError(t, err, spec)
	}
}

func TestScheduler_RunsJob(t *testing.T) {
	s := NewScheduler(time.UTC, time.Second, logger.NewNop())

	var runs atomic.Int32
	require.NoError(t, s.Add("tick", "@every 100ms", func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		if hasDeadline {
			runs.Add(1)
		}
		return nil
	}))

	s.Start()
	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))
}

func TestScheduler_WrapRecoversAndSwallowsErrors(t *testing.T) {
	s := NewScheduler(time.UTC, time.Second, logger.NewNop())

	assert.NotPanics(t, s.wrap("panics", func(context.Context) error { panic("boom") }))
	assert.NotPanics(t, s.wrap("fails", func(context.Context) error { return errors.New("fail") }))
}
