package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Parser поддерживает секунды (опционально) и дескрипторы вида @every 60s
var Parser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Func фоновая задача
type Func func(ctx context.Context) error

// Scheduler запускает фоновые задачи по расписанию. Запуск задачи пропускается,
// если предыдущий запуск той же задачи ещё не завершился
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
	logger  Logger
}

// NewScheduler создает планировщик в часовом поясе loc.
// timeout ограничивает время одного запуска задачи
func NewScheduler(loc *time.Location, timeout time.Duration, logger Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	if timeout <= 0 {
		timeout = time.Minute
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithParser(Parser),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger: logger})),
	)

	return &Scheduler{
		cron:    c,
		timeout: timeout,
		logger:  logger,
	}
}

// Add регистрирует задачу
func (s *Scheduler) Add(name, spec string, fn Func) error {
	if _, err := Parser.Parse(spec); err != nil {
		return fmt.Errorf("%w: %s %q: %v", ErrInvalidSchedule, name, spec, err)
	}

	if _, err := s.cron.AddFunc(spec, s.wrap(name, fn)); err != nil {
		return fmt.Errorf("%w: %s %q: %v", ErrInvalidSchedule, name, spec, err)
	}

	s.logger.Info("Scheduler: job registered name=%s schedule=%q", name, spec)
	return nil
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop останавливает планировщик и ждёт завершения выполняющихся задач или отмены ctx
func (s *Scheduler) Stop(ctx context.Context) error {
	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// wrap добавляет к задаче таймаут, логирование ошибок и восстановление после паники
func (s *Scheduler) wrap(name string, fn Func) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("Scheduler: job %s panicked: %v", name, r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			s.logger.Warn("Scheduler: job %s failed: %v", name, err)
		}
	}
}

// cronLogger адаптер логгера для robfig/cron
type cronLogger struct {
	logger Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info("cron: %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: %s: %v %v", msg, err, keysAndValues)
}
