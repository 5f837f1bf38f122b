package calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	calendarRepo "github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/calendar"
)

// Service источник недельного расписания.
// Сохранённое расписание имеет приоритет над расписанием по умолчанию из конфигурации
type Service struct {
	repo         CalendarRepository
	txManager    TransactionManager
	fallback     domain.CalendarConfiguration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис расписания
func NewService(
	repo CalendarRepository,
	txManager TransactionManager,
	fallback domain.CalendarConfiguration,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		txManager:    txManager,
		fallback:     fallback,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Current возвращает снимок текущего расписания
func (s *Service) Current(ctx context.Context) (*domain.CalendarConfiguration, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			fallback := s.fallback
			return &fallback, nil
		}
		s.logger.Error("Current: repository error: %v", err)
		return nil, fmt.Errorf("%w: Current - repository error: %v", ErrInternal, err)
	}

	return cfg, nil
}

// Replace проверяет и сохраняет новое расписание целиком
func (s *Service) Replace(ctx context.Context, cfg *domain.CalendarConfiguration) (*domain.CalendarConfiguration, error) {
	s.logger.Info("Replace: replacing calendar")

	// 1. Валидация расписания
	if err := cfg.Validate(); err != nil {
		s.logger.Warn("Replace: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidCalendar, err)
	}

	// 2. Сохраняем в транзакции: дни и интервалы заменяются вместе
	now := s.timeProvider.Now()
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.repo.Replace(txCtx, cfg, now)
	})
	if err != nil {
		s.logger.Error("Replace: repository error: %v", err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: calendar replaced")
	return cfg, nil
}
