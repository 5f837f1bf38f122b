package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	acquireHoldHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/acquire_hold"
	commitHoldHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/commit_hold"
	createAppointmentHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/create_appointment"
	createLedgerEntryHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/create_ledger_entry"
	getAppointmentHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/get_calendar"
	getCatalogHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/get_catalog"
	getLedgerHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/get_ledger"
	listAppointmentsHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/list_appointments"
	releaseHoldHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/release_hold"
	updateStatusHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/update_appointment_status"
	updateCalendarHandler "github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/update_calendar"
	"github.com/m04kA/SMC-ReservationEngine/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationEngine/internal/config"
	"github.com/m04kA/SMC-ReservationEngine/internal/infra/lock"
	"github.com/m04kA/SMC-ReservationEngine/internal/integrations/kafkanotify"
	"github.com/m04kA/SMC-ReservationEngine/internal/integrations/smsgateway"
	"github.com/m04kA/SMC-ReservationEngine/internal/jobs"
	appointmentsService "github.com/m04kA/SMC-ReservationEngine/internal/service/appointments"
	calendarService "github.com/m04kA/SMC-ReservationEngine/internal/service/calendar"
	catalogService "github.com/m04kA/SMC-ReservationEngine/internal/service/catalog"
	holdsService "github.com/m04kA/SMC-ReservationEngine/internal/service/holds"
	ledgerService "github.com/m04kA/SMC-ReservationEngine/internal/service/ledger"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/notifications"
	remindersService "github.com/m04kA/SMC-ReservationEngine/internal/service/reminders"
	acquireHoldUC "github.com/m04kA/SMC-ReservationEngine/internal/usecase/acquire_hold"
	commitHoldUC "github.com/m04kA/SMC-ReservationEngine/internal/usecase/commit_hold"
	createAppointmentUC "github.com/m04kA/SMC-ReservationEngine/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-ReservationEngine/internal/usecase/get_available_slots"
	releaseHoldUC "github.com/m04kA/SMC-ReservationEngine/internal/usecase/release_hold"
	updateStatusUC "github.com/m04kA/SMC-ReservationEngine/internal/usecase/update_appointment_status"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
	"github.com/m04kA/SMC-ReservationEngine/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ReservationEngine...")
	log.Info("Configuration loaded (storage=%s, timezone=%s, granularity=%dm, hold_ttl=%s)",
		cfg.Storage.Driver, cfg.Engine.Timezone, cfg.Engine.SlotGranularityMinutes, cfg.HoldTTL())

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к хранилищу
	store, err := openStorage(cfg, metricsCollector, stopMetricsCh, log)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer store.Close()

	loc := cfg.Location()

	fallbackCalendar, err := cfg.Calendar.ToDomain()
	if err != nil {
		log.Fatal("Invalid calendar configuration: %v", err)
	}

	// Инициализируем канал доставки уведомлений
	var (
		channel   notifications.Channel
		publisher *kafkanotify.Publisher
	)

	switch cfg.Notifications.Provider {
	case config.ProviderSMS:
		channel = smsgateway.NewClient(
			cfg.SMSGateway.URL,
			cfg.SMSGateway.Token,
			time.Duration(cfg.SMSGateway.Timeout)*time.Second,
			log,
		)
	case config.ProviderKafka:
		publisher, err = kafkanotify.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Fatal("Failed to create kafka publisher: %v", err)
		}
		channel = publisher
	default:
		channel = notifications.NewLogChannel(log)
	}
	log.Info("Notification channel initialized (provider=%s)", cfg.Notifications.Provider)

	dispatcher, err := notifications.NewDispatcher(channel, notifications.Config{
		Workers:     cfg.Notifications.Workers,
		Timeout:     time.Duration(cfg.Notifications.TimeoutSeconds) * time.Second,
		CountryCode: cfg.Notifications.CountryCode,
		Templates: notifications.Templates{
			Confirmed:  cfg.Notifications.Templates.Confirmed,
			Cancelled:  cfg.Notifications.Templates.Cancelled,
			Reminder:   cfg.Notifications.Templates.Reminder,
			DateLayout: cfg.Notifications.Templates.DateLayout,
		},
		Professionals: cfg.Catalog.ProfessionalNames(),
	}, log, metricsCollector)
	if err != nil {
		log.Fatal("Failed to create notification dispatcher: %v", err)
	}

	// Блокировка фоновых задач между инстансами
	var locker remindersService.Locker = lock.NoopLocker{}
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis ping failed (addr=%s): %v", cfg.Redis.Addr, err)
		}
		locker = lock.NewRedisLocker(rdb, cfg.Redis.LockPrefix)
		log.Info("Redis job locking enabled (addr=%s)", cfg.Redis.Addr)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(cfg.Catalog.ToDomain())
	calendarSvc := calendarService.NewService(store.calendar, store.txManager, fallbackCalendar, log)
	ledgerSvc := ledgerService.NewService(store.transactions, log)
	appointmentsSvc := appointmentsService.NewService(store.commitments, log)
	holdsSweeper := holdsService.NewSweeper(store.commitments, &holdsService.RealTimeProvider{}, metricsCollector, log)
	reminderSvc := remindersService.NewService(
		store.commitments,
		dispatcher,
		locker,
		&remindersService.RealTimeProvider{},
		remindersService.Config{
			Window:   time.Duration(cfg.Reminders.WindowMinutes) * time.Minute,
			Location: loc,
			LockTTL:  time.Duration(cfg.Reminders.LockTTLSeconds) * time.Second,
		},
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		store.commitments,
		calendarSvc,
		catalogSvc,
		getAvailableSlotsUC.Config{
			GranularityMinutes: cfg.Engine.SlotGranularityMinutes,
			Location:           loc,
		},
		log,
	)

	acquireHoldUseCase := acquireHoldUC.NewUseCase(
		store.commitments,
		calendarSvc,
		catalogSvc,
		acquireHoldUC.Config{
			TTL:                cfg.HoldTTL(),
			GranularityMinutes: cfg.Engine.SlotGranularityMinutes,
			Location:           loc,
		},
		metricsCollector,
		log,
	)

	commitHoldUseCase := commitHoldUC.NewUseCase(store.commitments, metricsCollector, log)
	releaseHoldUseCase := releaseHoldUC.NewUseCase(store.commitments, metricsCollector, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		store.commitments,
		ledgerSvc,
		catalogSvc,
		dispatcher,
		store.txManager,
		metricsCollector,
		log,
	)

	updateStatusUseCase := updateStatusUC.NewUseCase(
		store.commitments,
		ledgerSvc,
		catalogSvc,
		dispatcher,
		store.txManager,
		metricsCollector,
		log,
	)

	// Фоновые задачи
	scheduler := jobs.NewScheduler(loc, time.Duration(cfg.Engine.JobTimeoutSeconds)*time.Second, log)

	if err := scheduler.Add("hold-sweep", cfg.Engine.HoldSweepSchedule, func(ctx context.Context) error {
		_, err := holdsSweeper.Sweep(ctx)
		return err
	}); err != nil {
		log.Fatal("Failed to schedule hold sweep: %v", err)
	}

	if cfg.Reminders.Enabled {
		if err := scheduler.Add("reminders", cfg.Reminders.Schedule, func(ctx context.Context) error {
			_, err := reminderSvc.Sweep(ctx)
			if errors.Is(err, remindersService.ErrSweepInProgress) {
				return nil
			}
			return err
		}); err != nil {
			log.Fatal("Failed to schedule reminders: %v", err)
		}
	}

	scheduler.Start()

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	acquireHold := acquireHoldHandler.NewHandler(acquireHoldUseCase, log)
	releaseHold := releaseHoldHandler.NewHandler(releaseHoldUseCase, log)
	commitHold := commitHoldHandler.NewHandler(commitHoldUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(updateStatusUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	updateCalendar := updateCalendarHandler.NewHandler(calendarSvc, log)
	getLedger := getLedgerHandler.NewHandler(ledgerSvc, log)
	createLedgerEntry := createLedgerEntryHandler.NewHandler(ledgerSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (мастер записи клиента)
	// ============================================================

	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Холды ---
	api.HandleFunc("/holds", acquireHold.Handle).Methods(http.MethodPost)
	api.HandleFunc("/holds/{holdId}", releaseHold.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/holds/{holdId}/commit", commitHold.Handle).Methods(http.MethodPost)

	// ============================================================
	// OPERATOR ROUTES (требуют токен оператора)
	// ============================================================

	operator := api.PathPrefix("").Subrouter()
	operator.Use(middleware.OperatorAuth(cfg.Operator.Token))

	// --- Записи ---
	operator.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	operator.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	operator.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	operator.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// --- Расписание и журнал ---
	operator.HandleFunc("/calendar", updateCalendar.Handle).Methods(http.MethodPut)
	operator.HandleFunc("/ledger", getLedger.Handle).Methods(http.MethodGet)
	operator.HandleFunc("/ledger", createLedgerEntry.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := scheduler.Stop(shutdownCtx); err != nil {
		log.Error("Background jobs did not finish: %v", err)
	}

	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error("Pending notifications dropped: %v", err)
	}

	if publisher != nil {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close kafka publisher: %v", err)
		}
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
