package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBOpenConns     prometheus.Gauge
	DBInUseConns    prometheus.Gauge
	DBIdleConns     prometheus.Gauge
	DBWaitCount     prometheus.Gauge

	// Движок бронирования
	HoldsTotal           *prometheus.CounterVec
	TransitionsTotal     *prometheus.CounterVec
	RemindersSentTotal   prometheus.Counter
	ReminderSweepSeconds prometheus.Histogram
	NotificationsTotal   *prometheus.CounterVec
}

// New создаёт и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создаёт метрики и регистрирует их в переданном registry
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		DBOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}),
		DBInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}),
		DBIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),

		HoldsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_holds_total",
			Help:        "Hold operations by result (acquired, conflict, committed, expired, released, swept)",
			ConstLabels: constLabels,
		}, []string{"result"}),
		TransitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointment_transitions_total",
			Help:        "Appointment status transitions by outcome",
			ConstLabels: constLabels,
		}, []string{"from", "to", "outcome"}),
		RemindersSentTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reminders_sent_total",
			Help:        "Total number of reminders dispatched",
			ConstLabels: constLabels,
		}),
		ReminderSweepSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "reminder_sweep_duration_seconds",
			Help:        "Duration of one reminder sweep",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}),
		NotificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Notifications by channel, kind and result",
			ConstLabels: constLabels,
		}, []string{"channel", "kind", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConns,
		m.DBInUseConns,
		m.DBIdleConns,
		m.DBWaitCount,
		m.HoldsTotal,
		m.TransitionsTotal,
		m.RemindersSentTotal,
		m.ReminderSweepSeconds,
		m.NotificationsTotal,
	)

	return m
}

// IncHold увеличивает счётчик операций с холдами. Безопасно для nil
func (m *Metrics) IncHold(result string) {
	if m == nil {
		return
	}
	m.HoldsTotal.WithLabelValues(result).Inc()
}

// IncTransition увеличивает счётчик переходов статуса. Безопасно для nil
func (m *Metrics) IncTransition(from, to, outcome string) {
	if m == nil {
		return
	}
	m.TransitionsTotal.WithLabelValues(from, to, outcome).Inc()
}

// IncReminder увеличивает счётчик отправленных напоминаний. Безопасно для nil
func (m *Metrics) IncReminder() {
	if m == nil {
		return
	}
	m.RemindersSentTotal.Inc()
}

// ObserveSweep записывает длительность прохода напоминаний. Безопасно для nil
func (m *Metrics) ObserveSweep(seconds float64) {
	if m == nil {
		return
	}
	m.ReminderSweepSeconds.Observe(seconds)
}

// IncNotification увеличивает счётчик уведомлений. Безопасно для nil
func (m *Metrics) IncNotification(channel, kind, result string) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(channel, kind, result).Inc()
}
