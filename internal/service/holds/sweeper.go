package holds

import (
	"context"
	"fmt"
)

// Sweeper удаляет истёкшие холды. Истёкший холд и так не блокирует слот,
// проход только чистит хранилище
type Sweeper struct {
	repo         CommitmentRepository
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewSweeper создает чистильщик холдов
func NewSweeper(repo CommitmentRepository, timeProvider TimeProvider, metrics Metrics, logger Logger) *Sweeper {
	return &Sweeper{
		repo:         repo,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Sweep удаляет все истёкшие холды и возвращает их количество
func (s *Sweeper) Sweep(ctx context.Context) (int64, error) {
	purged, err := s.repo.PurgeExpiredHolds(ctx, nil, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Sweep: failed to purge expired holds: %v", err)
		return 0, fmt.Errorf("%w: Sweep - purge: %v", ErrInternal, err)
	}

	for i := int64(0); i < purged; i++ {
		s.metrics.IncHold("expired")
	}

	if purged > 0 {
		s.logger.Info("Sweep: purged %d expired holds", purged)
	}

	return purged, nil
}
