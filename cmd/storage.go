package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationEngine/internal/config"
	calendarRepo "github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/calendar"
	commitmentRepo "github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/commitment"
	"github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/sqlite"
	transactionRepo "github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/transaction"
	appointmentsService "github.com/m04kA/SMC-ReservationEngine/internal/service/appointments"
	calendarService "github.com/m04kA/SMC-ReservationEngine/internal/service/calendar"
	holdsService "github.com/m04kA/SMC-ReservationEngine/internal/service/holds"
	ledgerService "github.com/m04kA/SMC-ReservationEngine/internal/service/ledger"
	remindersService "github.com/m04kA/SMC-ReservationEngine/internal/service/reminders"
	acquireHoldUC "github.com/m04kA/SMC-ReservationEngine/internal/usecase/acquire_hold"
	commitHoldUC "github.com/m04kA/SMC-ReservationEngine/internal/usecase/commit_hold"
	createAppointmentUC "github.com/m04kA/SMC-ReservationEngine/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-ReservationEngine/internal/usecase/get_available_slots"
	releaseHoldUC "github.com/m04kA/SMC-ReservationEngine/internal/usecase/release_hold"
	updateStatusUC "github.com/m04kA/SMC-ReservationEngine/internal/usecase/update_appointment_status"
	"github.com/m04kA/SMC-ReservationEngine/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
	"github.com/m04kA/SMC-ReservationEngine/pkg/metrics"
	"github.com/m04kA/SMC-ReservationEngine/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ReservationEngine/pkg/txmanager"
)

// commitmentStore всё, что use cases и сервисы требуют от хранилища холдов и записей
type commitmentStore interface {
	acquireHoldUC.CommitmentRepository
	getAvailableSlotsUC.CommitmentRepository
	commitHoldUC.CommitmentRepository
	releaseHoldUC.CommitmentRepository
	createAppointmentUC.CommitmentRepository
	updateStatusUC.CommitmentRepository
	appointmentsService.CommitmentRepository
	remindersService.CommitmentRepository
	holdsService.CommitmentRepository
}

// txManager общий интерфейс обоих менеджеров транзакций
type txManager interface {
	createAppointmentUC.TransactionManager
	updateStatusUC.TransactionManager
	calendarService.TransactionManager
}

// storage хранилища выбранного драйвера
type storage struct {
	commitments  commitmentStore
	transactions ledgerService.TransactionRepository
	calendar     calendarService.CalendarRepository
	txManager    txManager
	db           *sql.DB
}

// Close закрывает соединение с базой
func (s *storage) Close() error {
	return s.db.Close()
}

// openStorage подключается к базе выбранного драйвера.
// При включённых метриках запросы идут через обёртку dbmetrics
func openStorage(
	cfg *config.Config,
	metricsCollector *metrics.Metrics,
	stopMetricsCh <-chan struct{},
	log *logger.Logger,
) (*storage, error) {
	db, err := openDB(cfg, log)
	if err != nil {
		return nil, err
	}

	var (
		executor dbmetrics.DBExecutor = db
		txMgr    txManager            = simpletxmanager.NewTransactionManager(db)
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	}

	s := &storage{txManager: txMgr, db: db}

	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		s.commitments = sqlite.NewCommitmentStore(executor)
		s.transactions = sqlite.NewTransactionStore(executor)
		s.calendar = sqlite.NewCalendarStore(executor)
	default:
		s.commitments = commitmentRepo.NewRepository(executor)
		s.transactions = transactionRepo.NewRepository(executor)
		s.calendar = calendarRepo.NewRepository(executor)
	}

	return s, nil
}

func openDB(cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	if cfg.Storage.Driver == config.DriverSQLite {
		db, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		log.Info("Using embedded sqlite storage (path=%s)", cfg.Storage.SQLitePath)
		return db, nil
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	return db, nil
}
