package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	transactionRepo "github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/transaction"
	"github.com/m04kA/SMC-ReservationEngine/pkg/dbmetrics"
)

const transactionsTable = "transactions"

var transactionColumns = []string{
	"id",
	"appointment_id",
	"title",
	"type",
	"amount",
	"tx_date",
	"created_at",
}

// TransactionStore встроенное хранилище финансового журнала
type TransactionStore struct {
	db DBExecutor
}

// NewTransactionStore создает хранилище поверх открытой базы
func NewTransactionStore(db DBExecutor) *TransactionStore {
	return &TransactionStore{db: db}
}

// Insert добавляет операцию; для операции записи вставка идемпотентна
func (s *TransactionStore) Insert(ctx context.Context, t *domain.Transaction) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	var appointmentID interface{}
	if t.AppointmentID != nil {
		appointmentID = *t.AppointmentID
	}

	query, args, err := builder.Insert(transactionsTable).
		Columns(transactionColumns...).
		Values(
			t.ID,
			appointmentID,
			t.Title,
			string(t.Type),
			t.Amount,
			formatDate(t.Date),
			toMillis(t.CreatedAt),
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
func (s *TransactionStore) GetByAppointmentID(ctx context.Context, appointmentID string) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := builder.Select(transactionColumns...).
		From(transactionsTable).
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAppointmentID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTransaction(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, transactionRepo.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAppointmentID - scan transaction: %v", ErrScanRow, err)
	}

	return t, nil
}

// DeleteByAppointmentID удаляет операции записи
func (s *TransactionStore) DeleteByAppointmentID(ctx context.Context, appointmentID string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := builder.Delete(transactionsTable).
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
func (s *TransactionStore) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	selectBuilder := builder.Select(transactionColumns...).From(transactionsTable)

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"tx_date": formatDate(*filter.From)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"tx_date": formatDate(*filter.To)})
	}
	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": string(*filter.Type)})
	}

	query, args, err := selectBuilder.OrderBy("tx_date DESC", "created_at DESC").ToSql()
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

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var (
		t             domain.Transaction
		appointmentID sql.NullString
		txType, date  string
		createdAt     int64
	)

	err := row.Scan(
		&t.ID,
		&appointmentID,
		&t.Title,
		&txType,
		&t.Amount,
		&date,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	t.Date, err = parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("parse tx_date %q: %v", date, err)
	}

	if appointmentID.Valid {
		id := appointmentID.String
		t.AppointmentID = &id
	}
	t.Type = domain.TransactionType(txType)
	t.CreatedAt = fromMillis(createdAt)

	return &t, nil
}
