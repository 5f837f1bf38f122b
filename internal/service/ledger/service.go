package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// Service проекция подтверждённых записей в финансовый журнал и его чтение
type Service struct {
	repo         TransactionRepository
	ids          IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис журнала
func NewService(repo TransactionRepository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		ids:          uuidGenerator{},
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// OnConfirm создаёт доход по подтверждённой записи.
// Ничего не делает, если у услуги нет цены или доход по записи уже есть.
// Должен вызываться в той же транзакции, что и смена статуса
func (s *Service) OnConfirm(ctx context.Context, appointment *domain.Appointment, service *domain.Service) (bool, error) {
	if service == nil || !service.HasPrice() {
		s.logger.Info("OnConfirm: service %q has no price, appointment=%s skipped",
			appointment.ServiceName, appointment.ID)
		return false, nil
	}

	appointmentID := appointment.ID
	t := &domain.Transaction{
		ID:            s.ids.NewID(),
		AppointmentID: &appointmentID,
		Title:         IncomeTitle(appointment.ServiceName, appointment.ClientName),
		Type:          domain.TransactionIncome,
		Amount:        *service.Price,
		Date:          appointment.Date,
		CreatedAt:     s.timeProvider.Now(),
	}

	created, err := s.repo.Insert(ctx, t)
	if err != nil {
		return false, fmt.Errorf("%w: OnConfirm - insert income: %v", ErrInternal, err)
	}

	if created {
		s.logger.Info("OnConfirm: income recorded appointment=%s amount=%.2f", appointment.ID, t.Amount)
	}

	return created, nil
}

// OnCancel удаляет операции отменённой записи
func (s *Service) OnCancel(ctx context.Context, appointmentID string) (int64, error) {
	removed, err := s.repo.DeleteByAppointmentID(ctx, appointmentID)
	if err != nil {
		return 0, fmt.Errorf("%w: OnCancel - delete transactions: %v", ErrInternal, err)
	}

	if removed > 0 {
		s.logger.Info("OnCancel: removed %d transactions appointment=%s", removed, appointmentID)
	}

	return removed, nil
}

// List возвращает операции за период и сводку по ним
func (s *Service) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, domain.LedgerSummary, error) {
	transactions, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, domain.LedgerSummary{}, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	values := make([]domain.Transaction, len(transactions))
	for i, t := range transactions {
		values[i] = *t
	}

	return transactions, domain.Summarize(values), nil
}

// CreateEntryRequest ручная операция без привязки к записи
type CreateEntryRequest struct {
	Title  string
	Type   domain.TransactionType
	Amount float64
	Date   time.Time
}

// CreateEntry добавляет ручную операцию
func (s *Service) CreateEntry(ctx context.Context, req *CreateEntryRequest) (*domain.Transaction, error) {
	s.logger.Info("CreateEntry: type=%s amount=%.2f date=%s", req.Type, req.Amount, req.Date.Format(domain.DateFormat))

	// 1. Валидация
	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > domain.MaxTitleLength {
		return nil, fmt.Errorf("%w: title must be 1..%d characters", ErrInvalidInput, domain.MaxTitleLength)
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidInput, req.Type)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Сохранение
	t := &domain.Transaction{
		ID:        s.ids.NewID(),
		Title:     title,
		Type:      req.Type,
		Amount:    req.Amount,
		Date:      domain.DateOnly(req.Date),
		CreatedAt: s.timeProvider.Now(),
	}

	if _, err := s.repo.Insert(ctx, t); err != nil {
		s.logger.Error("CreateEntry: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateEntry - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateEntry: created transaction id=%s", t.ID)
	return t, nil
}

// IncomeTitle заголовок дохода по записи: "<услуга> - <клиент>"
func IncomeTitle(serviceName, clientName string) string {
	return serviceName + " - " + clientName
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
