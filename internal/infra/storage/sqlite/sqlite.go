package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-ReservationEngine/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// builder squirrel с плейсхолдерами "?" для SQLite
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// Open открывает встроенную базу SQLite и применяет схему.
// Для ":memory:" база живёт, пока открыто единственное соединение
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: Open - open database: %v", ErrMigrate, err)
	}

	// SQLite поддерживает только одно write-подключение
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// migrate создаёт схему. Даты хранятся как TEXT (YYYY-MM-DD), моменты времени как unix-миллисекунды
func migrate(db *sql.DB) error {
	queries := []string{
		`PRAGMA journal_mode=WAL`,
		`PRAGMA foreign_keys=ON`,
		`CREATE TABLE IF NOT EXISTS commitments (
			id            TEXT PRIMARY KEY,
			kind          TEXT NOT NULL CHECK (kind IN ('hold', 'appointment')),
			professional  TEXT NOT NULL DEFAULT '',
			service_name  TEXT NOT NULL,
			commit_date   TEXT NOT NULL,
			start_time    TEXT NOT NULL,
			client_name   TEXT NOT NULL DEFAULT '',
			client_phone  TEXT NOT NULL DEFAULT '',
			status        TEXT NOT NULL CHECK (status IN ('held', 'pending', 'confirmed', 'cancelled')),
			reminder_sent INTEGER NOT NULL DEFAULT 0,
			expires_at    INTEGER,
			created_at    INTEGER NOT NULL,
			updated_at    INTEGER NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS commitments_active_slot_uq
			ON commitments (professional, commit_date, start_time)
			WHERE status <> 'cancelled'`,
		`CREATE INDEX IF NOT EXISTS commitments_date_idx ON commitments (commit_date)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id             TEXT PRIMARY KEY,
			appointment_id TEXT UNIQUE,
			title          TEXT NOT NULL,
			type           TEXT NOT NULL CHECK (type IN ('income', 'expense')),
			amount         REAL NOT NULL,
			tx_date        TEXT NOT NULL,
			created_at     INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS transactions_date_idx ON transactions (tx_date)`,
		`CREATE TABLE IF NOT EXISTS calendar_days (
			weekday    INTEGER PRIMARY KEY CHECK (weekday BETWEEN 0 AND 6),
			is_open    INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS calendar_intervals (
			weekday    INTEGER NOT NULL REFERENCES calendar_days (weekday) ON DELETE CASCADE,
			position   INTEGER NOT NULL,
			start_time TEXT NOT NULL,
			end_time   TEXT NOT NULL,
			PRIMARY KEY (weekday, position)
		)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("%w: migrate: %v", ErrMigrate, err)
		}
	}

	return nil
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}
