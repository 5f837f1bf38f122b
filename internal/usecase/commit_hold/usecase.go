package commit_hold

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	commitmentRepo "github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/commitment"
)

// UseCase use case для превращения холда в запись клиента
type UseCase struct {
	commitmentRepo CommitmentRepository
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(commitmentRepo CommitmentRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		commitmentRepo: commitmentRepo,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute создаёт запись в статусе pending на месте живого холда.
// Ключ слота не освобождается ни на мгновение: холд и запись это одна строка хранилища
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CommitHold: validation failed: %v", err)
		return nil, err
	}

	if _, err := uuid.Parse(req.HoldID); err != nil {
		uc.logger.Warn("CommitHold: malformed hold id %q", req.HoldID)
		return nil, ErrHoldNotFound
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем холд
	commitment, err := uc.commitmentRepo.GetByID(ctx, req.HoldID)
	if err != nil {
		if errors.Is(err, commitmentRepo.ErrCommitmentNotFound) {
			uc.logger.Warn("CommitHold: hold=%s not found", req.HoldID)
			return nil, ErrHoldNotFound
		}
		uc.logger.Error("CommitHold: failed to get hold=%s: %v", req.HoldID, err)
		return nil, fmt.Errorf("%w: Execute - get hold: %v", ErrInternal, err)
	}

	if !commitment.IsHold() {
		uc.logger.Warn("CommitHold: id=%s is not a hold", req.HoldID)
		return nil, ErrHoldNotFound
	}

	// 4. Истёкший холд удаляем, запись не создаём
	if commitment.IsExpired(now) {
		if _, err := uc.commitmentRepo.Delete(ctx, req.HoldID, domain.KindHold); err != nil {
			uc.logger.Error("CommitHold: failed to delete expired hold=%s: %v", req.HoldID, err)
		}
		uc.metrics.IncHold("expired")
		uc.logger.Info("CommitHold: hold=%s expired at %s", req.HoldID, commitment.ExpiresAt.Format(time.RFC3339))
		return nil, ErrHoldExpired
	}

	appointment := &domain.Appointment{
		ID:           uuid.NewString(),
		Professional: commitment.Professional,
		ServiceName:  commitment.ServiceName,
		Date:         commitment.Date,
		Time:         commitment.Time,
		ClientName:   strings.TrimSpace(req.ClientName),
		ClientPhone:  strings.TrimSpace(req.ClientPhone),
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 5. Условное превращение холда в запись
	promoted, err := uc.commitmentRepo.PromoteHold(ctx, req.HoldID, appointment, now)
	if err != nil {
		uc.logger.Error("CommitHold: failed to promote hold=%s: %v", req.HoldID, err)
		return nil, fmt.Errorf("%w: Execute - promote hold: %v", ErrInternal, err)
	}

	if !promoted {
		// холд освобождён или подтверждён параллельным запросом
		uc.logger.Warn("CommitHold: hold=%s disappeared before promotion", req.HoldID)
		return nil, ErrHoldNotFound
	}

	uc.metrics.IncHold("committed")
	uc.logger.Info("CommitHold: hold=%s committed as appointment=%s key=%s", req.HoldID, appointment.ID, appointment.Key())

	return &Response{
		ID:           appointment.ID,
		Professional: appointment.Professional,
		ServiceName:  appointment.ServiceName,
		Date:         appointment.Date,
		Time:         appointment.Time,
		ClientName:   appointment.ClientName,
		ClientPhone:  appointment.ClientPhone,
		Status:       string(appointment.Status),
		CreatedAt:    appointment.CreatedAt,
	}, nil
}
