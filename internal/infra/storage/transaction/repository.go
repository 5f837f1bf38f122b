package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationEngine/pkg/psqlbuilder"
)

const table = "transactions"

var columns = []string{
	"id",
	"appointment_id",
	"title",
	"type",
	"amount",
	"tx_date",
	"created_at",
}

// Repository репозиторий финансового журнала (PostgreSQL)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert добавляет операцию. Для операции с AppointmentID вставка идемпотентна:
// если операция по записи уже есть, возвращается false
func (r *Repository) Insert(ctx context.Context, t *domain.Transaction) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			t.ID,
			t.AppointmentID,
			t.Title,
			t.Type,
			t.Amount,
			domain.DateOnly(t.Date),
			t.CreatedAt,
		).
		Suffix("ON CONFLICT (appointment_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Insert - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

// GetByAppointmentID получает операцию, порождённую записью
func (r *Repository) GetByAppointmentID(ctx context.Context, appointmentID string) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAppointmentID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTransaction(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAppointmentID - scan transaction: %v", ErrScanRow, err)
	}

	return t, nil
}

// DeleteByAppointmentID удаляет операции записи. Возвращает количество удалённых строк
func (r *Repository) DeleteByAppointmentID(ctx context.Context, appointmentID string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByAppointmentID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByAppointmentID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByAppointmentID - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// List получает операции журнала с фильтрацией по периоду и типу
func (r *Repository) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(table)

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"tx_date": domain.DateOnly(*filter.From)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"tx_date": domain.DateOnly(*filter.To)})
	}
	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *filter.Type})
	}

	query, args, err := selectBuilder.
		OrderBy("tx_date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return transactions, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var t domain.Transaction
	var appointmentID sql.NullString
	var createdAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&appointmentID,
		&t.Title,
		&t.Type,
		&t.Amount,
		&t.Date,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if appointmentID.Valid {
		id := appointmentID.String
		t.AppointmentID = &id
	}
	t.Date = domain.DateOnly(t.Date)
	t.CreatedAt = createdAt.Time

	return &t, nil
}
