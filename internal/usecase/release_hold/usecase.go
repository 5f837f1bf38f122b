package release_hold

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// UseCase use case для освобождения холда
type UseCase struct {
	commitmentRepo CommitmentRepository
	metrics        Metrics
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(commitmentRepo CommitmentRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		commitmentRepo: commitmentRepo,
		metrics:        metrics,
		logger:         logger,
	}
}

// Execute удаляет холд. Идемпотентна: неизвестный или уже удалённый холд не ошибка.
// Возвращает true, если холд был удалён этим вызовом
func (uc *UseCase) Execute(ctx context.Context, holdID string) (bool, error) {
	// Некорректный идентификатор не может принадлежать холду
	if _, err := uuid.Parse(holdID); err != nil {
		uc.logger.Info("ReleaseHold: malformed hold id %q ignored", holdID)
		return false, nil
	}

	released, err := uc.commitmentRepo.Delete(ctx, holdID, domain.KindHold)
	if err != nil {
		uc.logger.Error("ReleaseHold: failed to delete hold=%s: %v", holdID, err)
		return false, fmt.Errorf("%w: Execute - delete hold: %v", ErrInternal, err)
	}

	if released {
		uc.metrics.IncHold("released")
		uc.logger.Info("ReleaseHold: hold=%s released", holdID)
	}

	return released, nil
}
