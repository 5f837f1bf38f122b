package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	catalogService "github.com/m04kA/SMC-ReservationEngine/internal/service/catalog"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/notifications"
)

// UseCase use case для создания записи оператором
type UseCase struct {
	commitmentRepo CommitmentRepository
	ledger         Ledger
	catalog        Catalog
	notifier       Notifier
	txManager      TransactionManager
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	commitmentRepo CommitmentRepository,
	ledger Ledger,
	catalog Catalog,
	notifier Notifier,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		commitmentRepo: commitmentRepo,
		ledger:         ledger,
		catalog:        catalog,
		notifier:       notifier,
		txManager:      txManager,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute создаёт сразу подтверждённую запись. Слот занимается той же атомарной
// вставкой, что и холд, затем выполняются побочные эффекты подтверждения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: professional=%q service=%q date=%s time=%s",
		req.Professional, req.ServiceName, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем каталог
	service, err := uc.catalog.ServiceByName(req.ServiceName)
	if err != nil {
		if errors.Is(err, catalogService.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service %q not found", req.ServiceName)
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: Execute - catalog: %v", ErrInternal, err)
	}

	if err := uc.catalog.CheckProfessional(req.Professional); err != nil {
		uc.logger.Warn("CreateAppointment: professional %q not found", req.Professional)
		return nil, ErrProfessionalNotFound
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	appointment := &domain.Appointment{
		ID:           uuid.NewString(),
		Professional: req.Professional,
		ServiceName:  service.Name,
		Date:         domain.DateOnly(req.Date),
		Time:         req.Time,
		ClientName:   strings.TrimSpace(req.ClientName),
		ClientPhone:  strings.TrimSpace(req.ClientPhone),
		Status:       domain.StatusConfirmed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	key := appointment.Key()

	// 4. Ленивая очистка истёкших холдов этого ключа
	if _, err := uc.commitmentRepo.PurgeExpiredHolds(ctx, &key, now); err != nil {
		uc.logger.Error("CreateAppointment: failed to purge expired holds key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: Execute - purge expired: %v", ErrInternal, err)
	}

	var ledgerCreated bool

	// 5. Вставка и проекция в журнал в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 5.1. Атомарная вставка
		inserted, err := uc.commitmentRepo.InsertIfAbsent(txCtx, domain.NewAppointmentCommitment(appointment))
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to insert key=%s: %v", key, err)
			return fmt.Errorf("%w: Execute - insert appointment: %v", ErrInternal, err)
		}
		if !inserted {
			uc.logger.Info("CreateAppointment: conflict key=%s", key)
			return ErrSlotTaken
		}

		// 5.2. Доход по подтверждённой записи
		ledgerCreated, err = uc.ledger.OnConfirm(txCtx, appointment, service)
		if err != nil {
			uc.logger.Error("CreateAppointment: ledger on confirm appointment=%s: %v", appointment.ID, err)
			return fmt.Errorf("%w: Execute - ledger on confirm: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncTransition("new", string(domain.StatusConfirmed), string(domain.OutcomeApplied))

	// 6. Уведомление после фиксации
	notified := uc.notifier.Notify(notifications.KindConfirmed, appointment)

	uc.logger.Info("CreateAppointment: appointment=%s created key=%s", appointment.ID, key)

	return &Response{
		ID:            appointment.ID,
		Professional:  appointment.Professional,
		ServiceName:   appointment.ServiceName,
		Date:          appointment.Date,
		Time:          appointment.Time,
		ClientName:    appointment.ClientName,
		ClientPhone:   appointment.ClientPhone,
		Status:        string(appointment.Status),
		LedgerCreated: ledgerCreated,
		Notified:      notified,
		CreatedAt:     appointment.CreatedAt,
	}, nil
}
