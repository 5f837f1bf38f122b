package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationEngine/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

const (
	daysTable      = "calendar_days"
	intervalsTable = "calendar_intervals"
)

// Repository репозиторий недельного расписания (PostgreSQL)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает сохранённое расписание. Если ни один день не сохранён, возвращает ErrCalendarNotFound
func (r *Repository) Get(ctx context.Context) (*domain.CalendarConfiguration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "is_open").
		From(daysTable).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build days query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute days query: %v", ErrExecQuery, err)
	}

	var cfg domain.CalendarConfiguration
	found := 0
	for rows.Next() {
		var weekday int
		var isOpen bool
		if err := rows.Scan(&weekday, &isOpen); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: Get - scan day: %v", ErrScanRow, err)
		}
		cfg.SetWeekday(time.Weekday(weekday), domain.DaySchedule{IsOpen: isOpen})
		found++
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("%w: Get - days rows error: %v", ErrScanRow, err)
	}
	rows.Close()

	if found == 0 {
		return nil, ErrCalendarNotFound
	}

	query, args, err = psqlbuilder.Select("weekday", "start_time", "end_time").
		From(intervalsTable).
		OrderBy("weekday ASC", "position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build intervals query: %v", ErrBuildQuery, err)
	}

	rows, err = executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute intervals query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekday int
		var start, end types.TimeString
		if err := rows.Scan(&weekday, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: Get - scan interval: %v", ErrScanRow, err)
		}

		day := cfg.ForWeekday(time.Weekday(weekday))
		day.Intervals = append(day.Intervals, domain.TimeInterval{Start: start, End: end})
		cfg.SetWeekday(time.Weekday(weekday), day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Get - intervals rows error: %v", ErrScanRow, err)
	}

	return &cfg, nil
}

// Replace полностью заменяет расписание. Вызывать внутри транзакции
func (r *Repository) Replace(ctx context.Context, cfg *domain.CalendarConfiguration, now time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Интервалы удаляются каскадно
	query, args, err := psqlbuilder.Delete(daysTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %v", ErrExecQuery, err)
	}

	days := psqlbuilder.Insert(daysTable).Columns("weekday", "is_open", "updated_at")
	intervals := psqlbuilder.Insert(intervalsTable).Columns("weekday", "position", "start_time", "end_time")
	hasIntervals := false

	for _, weekday := range domain.Weekdays {
		day := cfg.ForWeekday(weekday)
		days = days.Values(int(weekday), day.IsOpen, now)

		for i, interval := range day.Intervals {
			intervals = intervals.Values(int(weekday), i, interval.Start, interval.End)
			hasIntervals = true
		}
	}

	query, args, err = days.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build days insert: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute days insert: %v", ErrExecQuery, err)
	}

	if !hasIntervals {
		return nil
	}

	query, args, err = intervals.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build intervals insert: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute intervals insert: %v", ErrExecQuery, err)
	}

	return nil
}
