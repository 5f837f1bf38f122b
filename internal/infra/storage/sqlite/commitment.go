package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	commitmentRepo "github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/commitment"
	"github.com/m04kA/SMC-ReservationEngine/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

const commitmentsTable = "commitments"

var commitmentColumns = []string{
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

// CommitmentStore встроенное хранилище записей, занимающих слоты
type CommitmentStore struct {
	db DBExecutor
}

// NewCommitmentStore создает хранилище поверх открытой базы
func NewCommitmentStore(db DBExecutor) *CommitmentStore {
	return &CommitmentStore{db: db}
}

// InsertIfAbsent атомарно вставляет запись, если ключ не занят активной записью
func (s *CommitmentStore) InsertIfAbsent(ctx context.Context, c *domain.Commitment) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	var expiresAt interface{}
	if c.ExpiresAt != nil {
		expiresAt = toMillis(*c.ExpiresAt)
	}

	query, args, err := builder.Insert(commitmentsTable).
		Columns(commitmentColumns...).
		Values(
			c.ID,
			string(c.Kind),
			c.Professional,
			c.ServiceName,
			formatDate(c.Date),
			string(c.Time),
			c.ClientName,
			c.ClientPhone,
			string(c.Status),
			c.ReminderSent,
			expiresAt,
			toMillis(c.CreatedAt),
			toMillis(c.UpdatedAt),
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
func (s *CommitmentStore) GetByID(ctx context.Context, id string) (*domain.Commitment, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := builder.Select(commitmentColumns...).
		From(commitmentsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCommitment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, commitmentRepo.ErrCommitmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan commitment: %v", ErrScanRow, err)
	}

	return c, nil
}

// ListByDateProfessional получает неотменённые записи (включая холды) на дату для специалиста
func (s *CommitmentStore) ListByDateProfessional(ctx context.Context, date time.Time, professional string) ([]*domain.Commitment, error) {
	return s.query(ctx, "ListByDateProfessional", builder.Select(commitmentColumns...).
		From(commitmentsTable).
		Where(squirrel.Eq{"commit_date": formatDate(date), "professional": professional}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		OrderBy("start_time ASC"))
}

// List получает записи клиентов (без холдов) с фильтрацией
func (s *CommitmentStore) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Commitment, error) {
	selectBuilder := builder.Select(commitmentColumns...).
		From(commitmentsTable).
		Where(squirrel.Eq{"kind": string(domain.KindAppointment)})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"commit_date": formatDate(*filter.Date)})
	}
	if filter.Professional != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional": *filter.Professional})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	return s.query(ctx, "List", selectBuilder.OrderBy("commit_date ASC", "start_time ASC"))
}

// ListReminderCandidates получает подтверждённые записи без напоминания, начиная с fromDate
func (s *CommitmentStore) ListReminderCandidates(ctx context.Context, fromDate time.Time) ([]*domain.Commitment, error) {
	return s.query(ctx, "ListReminderCandidates", builder.Select(commitmentColumns...).
		From(commitmentsTable).
		Where(squirrel.Eq{
			"kind":          string(domain.KindAppointment),
			"status":        string(domain.StatusConfirmed),
			"reminder_sent": false,
		}).
		Where(squirrel.GtOrEq{"commit_date": formatDate(fromDate)}).
		OrderBy("commit_date ASC", "start_time ASC"))
}

// Delete удаляет запись указанного вида. Возвращает false, если записи не было
func (s *CommitmentStore) Delete(ctx context.Context, id string, kind domain.CommitmentKind) (bool, error) {
	rowsAffected, err := s.exec(ctx, "Delete", builder.Delete(commitmentsTable).
		Where(squirrel.Eq{"id": id, "kind": string(kind)}))
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// PurgeExpiredHolds удаляет истёкшие холды. Если key задан, удаляются только холды этого ключа
func (s *CommitmentStore) PurgeExpiredHolds(ctx context.Context, key *domain.SlotKey, now time.Time) (int64, error) {
	deleteBuilder := builder.Delete(commitmentsTable).
		Where(squirrel.Eq{"kind": string(domain.KindHold)}).
		Where(squirrel.LtOrEq{"expires_at": toMillis(now)})

	if key != nil {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{
			"professional": key.Professional,
			"commit_date":  formatDate(key.Date),
			"start_time":   string(key.Time),
		})
	}

	return s.exec(ctx, "PurgeExpiredHolds", deleteBuilder)
}

// PromoteHold превращает живой холд в запись клиента одним условным UPDATE
func (s *CommitmentStore) PromoteHold(ctx context.Context, holdID string, appointment *domain.Appointment, now time.Time) (bool, error) {
	rowsAffected, err := s.exec(ctx, "PromoteHold", builder.Update(commitmentsTable).
		Set("id", appointment.ID).
		Set("kind", string(domain.KindAppointment)).
		Set("status", string(appointment.Status)).
		Set("client_name", appointment.ClientName).
		Set("client_phone", appointment.ClientPhone).
		Set("reminder_sent", false).
		Set("expires_at", nil).
		Set("created_at", toMillis(appointment.CreatedAt)).
		Set("updated_at", toMillis(appointment.UpdatedAt)).
		Where(squirrel.Eq{"id": holdID, "kind": string(domain.KindHold)}).
		Where(squirrel.Gt{"expires_at": toMillis(now)}))
	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// UpdateStatus меняет статус записи клиента с from на to
func (s *CommitmentStore) UpdateStatus(ctx context.Context, id string, from, to domain.AppointmentStatus, now time.Time) error {
	rowsAffected, err := s.exec(ctx, "UpdateStatus", builder.Update(commitmentsTable).
		Set("status", string(to)).
		Set("updated_at", toMillis(now)).
		Where(squirrel.Eq{"id": id, "kind": string(domain.KindAppointment), "status": string(from)}))
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return commitmentRepo.ErrStatusChanged
	}
	return nil
}

// MarkReminderSent выставляет флаг напоминания, только если он ещё не выставлен
func (s *CommitmentStore) MarkReminderSent(ctx context.Context, id string, now time.Time) (bool, error) {
	rowsAffected, err := s.exec(ctx, "MarkReminderSent", builder.Update(commitmentsTable).
		Set("reminder_sent", true).
		Set("updated_at", toMillis(now)).
		Where(squirrel.Eq{"id": id, "kind": string(domain.KindAppointment), "reminder_sent": false}))
	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

func (s *CommitmentStore) query(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Commitment, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	commitments := make([]*domain.Commitment, 0)
	for rows.Next() {
		c, err := scanCommitment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		commitments = append(commitments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return commitments, nil
}

type sqlizer interface {
	ToSql() (string, []interface{}, error)
}

func (s *CommitmentStore) exec(ctx context.Context, op string, b sqlizer) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	return rowsAffected, nil
}

func scanCommitment(row rowScanner) (*domain.Commitment, error) {
	var (
		c                    domain.Commitment
		kind, status, date   string
		startTime            string
		expiresAt            sql.NullInt64
		createdAt, updatedAt int64
	)

	err := row.Scan(
		&c.ID,
		&kind,
		&c.Professional,
		&c.ServiceName,
		&date,
		&startTime,
		&c.ClientName,
		&c.ClientPhone,
		&status,
		&c.ReminderSent,
		&expiresAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Date, err = parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("parse commit_date %q: %v", date, err)
	}

	c.Kind = domain.CommitmentKind(kind)
	c.Status = domain.AppointmentStatus(status)
	c.Time = types.TimeString(startTime)
	if expiresAt.Valid {
		t := fromMillis(expiresAt.Int64)
		c.ExpiresAt = &t
	}
	c.CreatedAt = fromMillis(createdAt)
	c.UpdatedAt = fromMillis(updatedAt)

	return &c, nil
}
