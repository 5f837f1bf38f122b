package commitment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationEngine/pkg/psqlbuilder"
)

const table = "commitments"

var columns = []string{
	"id",
	"kind",
	"professional",
	"service_name",
	"commit_date",
	"start_time",
	"client_name",
	"client_phone",
	"status",
	"reminder_sent",
	"expires_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей, занимающих слоты (PostgreSQL)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// InsertIfAbsent атомарно вставляет запись, если ключ (professional, commit_date, start_time)
// не занят активной записью. Возвращает false, если ключ уже занят.
// Атомарность обеспечивает частичный уникальный индекс commitments_active_slot_uq
func (r *Repository) InsertIfAbsent(ctx context.Context, c *domain.Commitment) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			c.ID,
			c.Kind,
			c.Professional,
			c.ServiceName,
			domain.DateOnly(c.Date),
			c.Time,
			c.ClientName,
			c.ClientPhone,
			c.Status,
			c.ReminderSent,
			c.ExpiresAt,
			c.CreatedAt,
			c.UpdatedAt,
		).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: InsertIfAbsent - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: InsertIfAbsent - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: InsertIfAbsent - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Commitment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCommitment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCommitmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan commitment: %v", ErrScanRow, err)
	}

	return c, nil
}

// ListByDateProfessional получает неотменённые записи (включая холды) на дату для специалиста.
// Пустой professional выбирает записи без специалиста
func (r *Repository) ListByDateProfessional(ctx context.Context, date time.Time, professional string) ([]*domain.Commitment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"commit_date":  domain.DateOnly(date),
			"professional": professional,
		}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCommitments(rows)
}

// List получает записи клиентов (без холдов) с фильтрацией
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Commitment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"kind": domain.KindAppointment})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"commit_date": domain.DateOnly(*filter.Date)})
	}
	if filter.Professional != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional": *filter.Professional})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.
		OrderBy("commit_date ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCommitments(rows)
}

// Delete удаляет запись указанного вида. Возвращает false, если записи не было
func (r *Repository) Delete(ctx context.Context, id string, kind domain.CommitmentKind) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id, "kind": kind}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// PurgeExpiredHolds удаляет истёкшие холды. Если key задан, удаляются только холды этого ключа
func (r *Repository) PurgeExpiredHolds(ctx context.Context, key *domain.SlotKey, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteBuilder := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"kind": domain.KindHold}).
		Where(squirrel.LtOrEq{"expires_at": now})

	if key != nil {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{
			"professional": key.Professional,
			"commit_date":  domain.DateOnly(key.Date),
			"start_time":   key.Time,
		})
	}

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeExpiredHolds - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeExpiredHolds - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeExpiredHolds - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// PromoteHold превращает живой холд в запись клиента одним условным UPDATE.
// Ключ слота не освобождается ни на мгновение. Возвращает false, если холда нет или он истёк
func (r *Repository) PromoteHold(ctx context.Context, holdID string, appointment *domain.Appointment, now time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("id", appointment.ID).
		Set("kind", domain.KindAppointment).
		Set("status", appointment.Status).
		Set("client_name", appointment.ClientName).
		Set("client_phone", appointment.ClientPhone).
		Set("reminder_sent", false).
		Set("expires_at", nil).
		Set("created_at", appointment.CreatedAt).
		Set("updated_at", appointment.UpdatedAt).
		Where(squirrel.Eq{"id": holdID, "kind": domain.KindHold}).
		Where(squirrel.Gt{"expires_at": now}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: PromoteHold - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: PromoteHold - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: PromoteHold - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

// UpdateStatus меняет статус записи клиента с from на to.
// Если текущий статус уже не from, возвращает ErrStatusChanged
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to domain.AppointmentStatus, now time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", to).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "kind": domain.KindAppointment, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusChanged
	}

	return nil
}

// MarkReminderSent выставляет флаг напоминания, только если он ещё не выставлен.
// Возвращает true, если флаг выставлен этим вызовом
func (r *Repository) MarkReminderSent(ctx context.Context, id string, now time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("reminder_sent", true).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "kind": domain.KindAppointment, "reminder_sent": false}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: MarkReminderSent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: MarkReminderSent - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: MarkReminderSent - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

// ListReminderCandidates получает подтверждённые записи без напоминания, начиная с fromDate
func (r *Repository) ListReminderCandidates(ctx context.Context, fromDate time.Time) ([]*domain.Commitment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"kind":          domain.KindAppointment,
			"status":        domain.StatusConfirmed,
			"reminder_sent": false,
		}).
		Where(squirrel.GtOrEq{"commit_date": domain.DateOnly(fromDate)}).
		OrderBy("commit_date ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListReminderCandidates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListReminderCandidates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCommitments(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanCommitment сканирует одну строку в запись
func scanCommitment(row rowScanner) (*domain.Commitment, error) {
	var c domain.Commitment
	var expiresAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.Kind,
		&c.Professional,
		&c.ServiceName,
		&c.Date,
		&c.Time,
		&c.ClientName,
		&c.ClientPhone,
		&c.Status,
		&c.ReminderSent,
		&expiresAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if expiresAt.Valid {
		t := expiresAt.Time
		c.ExpiresAt = &t
	}
	c.Date = domain.DateOnly(c.Date)
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// scanCommitments сканирует результаты запроса в слайс записей
func scanCommitments(rows *sql.Rows) ([]*domain.Commitment, error) {
	commitments := make([]*domain.Commitment, 0)

	for rows.Next() {
		c, err := scanCommitment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanCommitments - scan row: %v", ErrScanRow, err)
		}
		commitments = append(commitments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCommitments - rows error: %v", ErrScanRow, err)
	}

	return commitments, nil
}
