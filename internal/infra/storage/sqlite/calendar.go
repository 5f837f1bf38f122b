package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	calendarRepo "github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-ReservationEngine/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// CalendarStore встроенное хранилище недельного расписания
type CalendarStore struct {
	db DBExecutor
}

// NewCalendarStore создает хранилище поверх открытой базы
func NewCalendarStore(db DBExecutor) *CalendarStore {
	return &CalendarStore{db: db}
}

// Get читает сохранённое расписание
func (s *CalendarStore) Get(ctx context.Context) (*domain.CalendarConfiguration, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := builder.Select("weekday", "is_open").
		From("calendar_days").
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
		return nil, calendarRepo.ErrCalendarNotFound
	}

	query, args, err = builder.Select("weekday", "start_time", "end_time").
		From("calendar_intervals").
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
		var start, end string
		if err := rows.Scan(&weekday, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: Get - scan interval: %v", ErrScanRow, err)
		}

		day := cfg.ForWeekday(time.Weekday(weekday))
		day.Intervals = append(day.Intervals, domain.TimeInterval{
			Start: types.TimeString(start),
			End:   types.TimeString(end),
		})
		cfg.SetWeekday(time.Weekday(weekday), day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Get - intervals rows error: %v", ErrScanRow, err)
	}

	return &cfg, nil
}

// Replace полностью заменяет расписание. Вызывать внутри транзакции
func (s *CalendarStore) Replace(ctx context.Context, cfg *domain.CalendarConfiguration, now time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	// calendar_intervals чистится явно: каскад требует foreign_keys на каждом соединении
	for _, table := range []string{"calendar_intervals", "calendar_days"} {
		query, args, err := builder.Delete(table).ToSql()
		if err != nil {
			return fmt.Errorf("%w: Replace - build delete %s: %v", ErrBuildQuery, table, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Replace - delete %s: %v", ErrExecQuery, table, err)
		}
	}

	days := builder.Insert("calendar_days").Columns("weekday", "is_open", "updated_at")
	intervals := builder.Insert("calendar_intervals").Columns("weekday", "position", "start_time", "end_time")
	hasIntervals := false

	for _, weekday := range domain.Weekdays {
		day := cfg.ForWeekday(weekday)
		days = days.Values(int(weekday), day.IsOpen, toMillis(now))

		for i, interval := range day.Intervals {
			intervals = intervals.Values(int(weekday), i, string(interval.Start), string(interval.End))
			hasIntervals = true
		}
	}

	query, args, err := days.ToSql()
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
