package notifications

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// Config настройки диспетчера
type Config struct {
	Workers       int               // размер пула доставки
	Timeout       time.Duration     // таймаут одной доставки
	CountryCode   string            // префикс для номеров без "+"
	Templates     Templates         // шаблоны сообщений
	Professionals map[string]string // id специалиста -> имя для {professional}
}

// Dispatcher отправляет уведомления в фоне через ограниченный неблокирующий пул.
// Если пул занят, уведомление отбрасывается с записью в лог
type Dispatcher struct {
	pool    *ants.Pool
	channel Channel
	cfg     Config
	logger  Logger
	metrics Metrics
	wg      sync.WaitGroup
}

// NewDispatcher создает диспетчер поверх канала доставки
func NewDispatcher(channel Channel, cfg Config, logger Logger, metrics Metrics) (*Dispatcher, error) {
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("%w: workers must be positive", ErrInvalidConfig)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	cfg.Templates = cfg.Templates.withDefaults()

	pool, err := ants.NewPool(cfg.Workers, ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Dispatcher{
		pool:    pool,
		channel: channel,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Notify ставит уведомление в очередь и сразу возвращается.
// Возвращает false, если номер не подходит для доставки или пул переполнен
func (d *Dispatcher) Notify(kind Kind, a *domain.Appointment) bool {
	channelName := d.channel.Name()

	digits := domain.NormalizePhone(a.ClientPhone)
	if len(digits) < domain.MinPhoneDigits {
		d.logger.Info("Notify: %s skipped appointment=%s, phone has %d digits", kind, a.ID, len(digits))
		d.metrics.IncNotification(channelName, string(kind), "skipped")
		return false
	}

	to := d.address(a.ClientPhone, digits)
	message := d.cfg.Templates.Render(kind, a, d.cfg.Professionals[a.Professional])

	d.wg.Add(1)
	err := d.pool.Submit(func() {
		defer d.wg.Done()
		d.deliver(kind, a.ID, to, message)
	})
	if err != nil {
		d.wg.Done()
		d.logger.Warn("Notify: %s dropped appointment=%s: %v", kind, a.ID, err)
		d.metrics.IncNotification(channelName, string(kind), "dropped")
		return false
	}

	return true
}

// deliver выполняет доставку в воркере пула
func (d *Dispatcher) deliver(kind Kind, appointmentID, to, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.Timeout)
	defer cancel()

	channelName := d.channel.Name()
	if err := d.channel.Send(ctx, to, message); err != nil {
		d.logger.Error("Notify: %s delivery failed appointment=%s channel=%s: %v", kind, appointmentID, channelName, err)
		d.metrics.IncNotification(channelName, string(kind), "failed")
		return
	}

	d.metrics.IncNotification(channelName, string(kind), "sent")
}

// address добавляет код страны к номеру, если исходный номер не международный
func (d *Dispatcher) address(raw, digits string) string {
	if d.cfg.CountryCode == "" || strings.HasPrefix(strings.TrimSpace(raw), "+") {
		return digits
	}
	return d.cfg.CountryCode + digits
}

// Close ждёт завершения отправок в полёте (или отмены ctx) и освобождает пул
func (d *Dispatcher) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	defer d.pool.Release()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LogChannel канал, который только пишет сообщения в лог
type LogChannel struct {
	logger Logger
}

// NewLogChannel создает канал логирования
func NewLogChannel(logger Logger) *LogChannel {
	return &LogChannel{logger: logger}
}

// Name возвращает имя канала
func (c *LogChannel) Name() string {
	return "log"
}

// Send пишет сообщение в лог
func (c *LogChannel) Send(ctx context.Context, phone, message string) error {
	c.logger.Info("notification: to=%s message=%q", phone, message)
	return nil
}
