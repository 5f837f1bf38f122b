package acquire_hold

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	catalogService "github.com/m04kA/SMC-ReservationEngine/internal/service/catalog"
)

// UseCase use case для временного захвата слота
type UseCase struct {
	commitmentRepo CommitmentRepository
	calendar       CalendarProvider
	catalog        Catalog
	metrics        Metrics
	cfg            Config
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	commitmentRepo CommitmentRepository,
	calendar CalendarProvider,
	catalog Catalog,
	cfg Config,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if cfg.TTL <= 0 {
		cfg.TTL = domain.DefaultHoldTTL
	}
	if cfg.GranularityMinutes <= 0 {
		cfg.GranularityMinutes = domain.DefaultSlotGranularityMinutes
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &UseCase{
		commitmentRepo: commitmentRepo,
		calendar:       calendar,
		catalog:        catalog,
		metrics:        metrics,
		cfg:            cfg,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute захватывает слот на время TTL. Из нескольких одновременных запросов
// на один ключ успешен ровно один, остальные получают ErrSlotTaken
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AcquireHold: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)

	// 2. Проверяем каталог
	service, err := uc.catalog.ServiceByName(req.ServiceName)
	if err != nil {
		if errors.Is(err, catalogService.ErrServiceNotFound) {
			uc.logger.Warn("AcquireHold: service %q not found", req.ServiceName)
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: Execute - catalog: %v", ErrInternal, err)
	}

	if err := uc.catalog.CheckProfessional(req.Professional); err != nil {
		uc.logger.Warn("AcquireHold: professional %q not found", req.Professional)
		return nil, ErrProfessionalNotFound
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Время должно быть слотом расписания
	calendar, err := uc.calendar.Current(ctx)
	if err != nil {
		uc.logger.Error("AcquireHold: failed to get calendar: %v", err)
		return nil, fmt.Errorf("%w: Execute - get calendar: %v", ErrInternal, err)
	}

	if err := validateSlot(calendar.ForDate(date), uc.cfg.GranularityMinutes, date, req.Time, now, uc.cfg.Location); err != nil {
		uc.logger.Warn("AcquireHold: %v", err)
		return nil, err
	}

	hold := &domain.Hold{
		ID:           uuid.NewString(),
		Professional: req.Professional,
		ServiceName:  service.Name,
		Date:         date,
		Time:         req.Time,
		CreatedAt:    now,
		TTL:          uc.cfg.TTL,
	}
	key := hold.Key()

	// 5. Ленивая очистка истёкших холдов этого ключа
	purged, err := uc.commitmentRepo.PurgeExpiredHolds(ctx, &key, now)
	if err != nil {
		uc.logger.Error("AcquireHold: failed to purge expired holds key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: Execute - purge expired: %v", ErrInternal, err)
	}
	for i := int64(0); i < purged; i++ {
		uc.metrics.IncHold("expired")
	}

	// 6. Атомарная вставка
	inserted, err := uc.commitmentRepo.InsertIfAbsent(ctx, domain.NewHoldCommitment(hold))
	if err != nil {
		uc.logger.Error("AcquireHold: failed to insert hold key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: Execute - insert hold: %v", ErrInternal, err)
	}

	if !inserted {
		uc.logger.Info("AcquireHold: conflict key=%s", key)
		uc.metrics.IncHold("conflict")
		return nil, ErrSlotTaken
	}

	uc.metrics.IncHold("acquired")
	uc.logger.Info("AcquireHold: hold=%s key=%s expires=%s", hold.ID, key, hold.ExpiresAt().Format(time.RFC3339))

	return &Response{
		HoldID:       hold.ID,
		Professional: hold.Professional,
		ServiceName:  hold.ServiceName,
		Date:         hold.Date,
		Time:         hold.Time,
		ExpiresAt:    hold.ExpiresAt(),
	}, nil
}
