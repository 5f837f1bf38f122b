package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// UseCase use case для получения свободных слотов
type UseCase struct {
	commitmentRepo CommitmentRepository
	calendar       CalendarProvider
	catalog        Catalog
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
	logger Logger,
) *UseCase {
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
		cfg:            cfg,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)

	// 2. Специалист должен быть в каталоге
	if err := uc.catalog.CheckProfessional(req.Professional); err != nil {
		uc.logger.Warn("GetAvailableSlots: professional %q not found", req.Professional)
		return nil, ErrProfessionalNotFound
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Снимок расписания
	calendar, err := uc.calendar.Current(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get calendar: %v", err)
		return nil, fmt.Errorf("%w: Execute - get calendar: %v", ErrInternal, err)
	}

	schedule := calendar.ForDate(date)
	response := &Response{
		Date:               date,
		Professional:       req.Professional,
		GranularityMinutes: uc.cfg.GranularityMinutes,
		IsOpen:             schedule.IsOpen,
		Slots:              []types.TimeString{},
	}

	if !schedule.IsOpen {
		uc.logger.Info("GetAvailableSlots: closed on %s", date.Format(domain.DateFormat))
		return response, nil
	}

	// 5. Холды и записи на этот день
	commitments, err := uc.commitmentRepo.ListByDateProfessional(ctx, date, req.Professional)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list commitments: %v", err)
		return nil, fmt.Errorf("%w: Execute - list commitments: %v", ErrInternal, err)
	}

	// 6. Свободные слоты
	response.Slots = freeSlots(schedule, uc.cfg.GranularityMinutes, date, req.Professional, commitments, now, uc.cfg.Location)

	uc.logger.Info("GetAvailableSlots: date=%s professional=%q free=%d taken=%d",
		date.Format(domain.DateFormat), req.Professional, len(response.Slots), len(commitments))

	return response, nil
}
