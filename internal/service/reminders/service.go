package reminders

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/notifications"
)

const (
	lockName       = "reminders-sweep"
	dueLayout      = domain.DateFormat + " " + domain.TimeFormat
	defaultLockTTL = 5 * time.Minute
)

// Config настройки напоминаний
type Config struct {
	Window   time.Duration  // за сколько до начала отправлять напоминание
	Location *time.Location // часовой пояс бизнеса
	LockTTL  time.Duration  // время жизни распределённой блокировки
}

// Service отправляет напоминания о подтверждённых записях
type Service struct {
	repo         CommitmentRepository
	notifier     Notifier
	locker       Locker
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
	cfg          Config
	running      atomic.Bool
}

// NewService создает сервис напоминаний
func NewService(
	repo CommitmentRepository,
	notifier Notifier,
	locker Locker,
	timeProvider TimeProvider,
	cfg Config,
	metrics Metrics,
	logger Logger,
) *Service {
	if cfg.Window <= 0 {
		cfg.Window = domain.DefaultReminderWindow
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = defaultLockTTL
	}

	return &Service{
		repo:         repo,
		notifier:     notifier,
		locker:       locker,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
		cfg:          cfg,
	}
}

// Sweep выполняет один проход: помечает и отправляет напоминания для записей,
// начало которых наступит в пределах окна. Возвращает число отправленных напоминаний
func (s *Service) Sweep(ctx context.Context) (int, error) {
	// 1. Проходы не пересекаются внутри процесса
	if !s.running.CompareAndSwap(false, true) {
		return 0, ErrSweepInProgress
	}
	defer s.running.Store(false)

	// 2. И между инстансами
	release, ok, err := s.locker.TryLock(ctx, lockName, s.cfg.LockTTL)
	if err != nil {
		return 0, fmt.Errorf("%w: Sweep - acquire lock: %v", ErrInternal, err)
	}
	if !ok {
		return 0, ErrSweepInProgress
	}
	defer func() {
		if err := release(context.Background()); err != nil {
			s.logger.Warn("Sweep: failed to release lock: %v", err)
		}
	}()

	started := time.Now()
	defer func() {
		s.metrics.ObserveSweep(time.Since(started).Seconds())
	}()

	now := s.timeProvider.Now().In(s.cfg.Location)

	// 3. Кандидаты начиная со вчерашнего дня по часовому поясу бизнеса
	fromDate := domain.DateOnly(now.AddDate(0, 0, -1))
	candidates, err := s.repo.ListReminderCandidates(ctx, fromDate)
	if err != nil {
		s.logger.Error("Sweep: failed to list candidates: %v", err)
		return 0, fmt.Errorf("%w: Sweep - list candidates: %v", ErrInternal, err)
	}

	// 4. Отправляем напоминания, попавшие в окно
	sent := 0
	for _, c := range candidates {
		dueAt, err := time.ParseInLocation(dueLayout, c.Date.Format(domain.DateFormat)+" "+c.Time.String(), s.cfg.Location)
		if err != nil {
			s.logger.Warn("Sweep: invalid date/time appointment=%s date=%s time=%s: %v",
				c.ID, c.Date.Format(domain.DateFormat), c.Time, err)
			continue
		}

		if !isDue(dueAt, now, s.cfg.Window) {
			continue
		}

		marked, err := s.repo.MarkReminderSent(ctx, c.ID, s.timeProvider.Now())
		if err != nil {
			s.logger.Error("Sweep: failed to mark reminder appointment=%s: %v", c.ID, err)
			continue
		}
		if !marked {
			// уже отправлено другим проходом
			continue
		}

		s.notifier.Notify(notifications.KindReminder, c.ToAppointment())
		s.metrics.IncReminder()
		sent++
	}

	if sent > 0 {
		s.logger.Info("Sweep: reminders sent=%d candidates=%d", sent, len(candidates))
	}

	return sent, nil
}

// isDue 0 < dueAt-now <= window
func isDue(dueAt, now time.Time, window time.Duration) bool {
	left := dueAt.Sub(now)
	return left > 0 && left <= window
}
