package update_appointment_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	commitmentRepo "github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/commitment"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/notifications"
)

// UseCase use case смены статуса записи по таблице переходов
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

// Execute применяет переход статуса. Смена статуса и проекция в журнал выполняются
// в одной транзакции, уведомление отправляется после фиксации.
// Запрещённый переход не ошибка: возвращается OutcomeNotAllowed без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	to, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		uc.logger.Warn("UpdateAppointmentStatus: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := uuid.Parse(req.AppointmentID); err != nil {
		uc.logger.Warn("UpdateAppointmentStatus: malformed appointment id %q", req.AppointmentID)
		return nil, ErrAppointmentNotFound
	}

	// 2. Получаем запись
	commitment, err := uc.commitmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, commitmentRepo.ErrCommitmentNotFound) {
			uc.logger.Warn("UpdateAppointmentStatus: appointment=%s not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateAppointmentStatus: failed to get appointment=%s: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: Execute - get appointment: %v", ErrInternal, err)
	}

	if commitment.IsHold() {
		uc.logger.Warn("UpdateAppointmentStatus: id=%s is a hold", req.AppointmentID)
		return nil, ErrAppointmentNotFound
	}

	appointment := commitment.ToAppointment()
	from := appointment.Status

	// 3. Таблица переходов
	outcome := domain.Transition(from, to)
	uc.metrics.IncTransition(string(from), string(to), string(outcome))

	if outcome == domain.OutcomeNotAllowed {
		uc.logger.Warn("UpdateAppointmentStatus: appointment=%s %s -> %s not allowed", appointment.ID, from, to)
		return toResponse(outcome, appointment, from), nil
	}

	now := uc.timeProvider.Now()

	var (
		ledgerCreated bool
		ledgerRemoved int64
	)

	// 4. Статус и журнал в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error

		// 4.1. Noop не меняет статус
		if outcome == domain.OutcomeApplied {
			if err = uc.commitmentRepo.UpdateStatus(txCtx, appointment.ID, from, to, now); err != nil {
				if errors.Is(err, commitmentRepo.ErrStatusChanged) {
					uc.logger.Warn("UpdateAppointmentStatus: appointment=%s changed concurrently", appointment.ID)
					return ErrConcurrentUpdate
				}
				uc.logger.Error("UpdateAppointmentStatus: failed to update appointment=%s: %v", appointment.ID, err)
				return fmt.Errorf("%w: Execute - update status: %v", ErrInternal, err)
			}
			appointment.Status = to
			appointment.UpdatedAt = now
		}

		// 4.2. Проекция в журнал
		switch to {
		case domain.StatusConfirmed:
			ledgerCreated, err = uc.ledger.OnConfirm(txCtx, appointment, uc.lookupService(appointment.ServiceName))
			if err != nil {
				uc.logger.Error("UpdateAppointmentStatus: ledger on confirm appointment=%s: %v", appointment.ID, err)
				return fmt.Errorf("%w: Execute - ledger on confirm: %v", ErrInternal, err)
			}
		case domain.StatusCancelled:
			ledgerRemoved, err = uc.ledger.OnCancel(txCtx, appointment.ID)
			if err != nil {
				uc.logger.Error("UpdateAppointmentStatus: ledger on cancel appointment=%s: %v", appointment.ID, err)
				return fmt.Errorf("%w: Execute - ledger on cancel: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	result := toResponse(outcome, appointment, from)
	result.LedgerCreated = ledgerCreated
	result.LedgerRemoved = ledgerRemoved

	// 5. Уведомление клиента только при реальной смене статуса
	if outcome == domain.OutcomeApplied {
		switch to {
		case domain.StatusConfirmed:
			result.Notified = uc.notifier.Notify(notifications.KindConfirmed, appointment)
		case domain.StatusCancelled:
			result.Notified = uc.notifier.Notify(notifications.KindCancelled, appointment)
		}
	}

	uc.logger.Info("UpdateAppointmentStatus: appointment=%s %s -> %s outcome=%s", appointment.ID, from, to, outcome)

	return result, nil
}

// lookupService ищет услугу записи в каталоге. Услуга могла быть убрана из каталога,
// тогда доход не создаётся
func (uc *UseCase) lookupService(name string) *domain.Service {
	service, err := uc.catalog.ServiceByName(name)
	if err != nil {
		uc.logger.Warn("UpdateAppointmentStatus: service %q not in catalog: %v", name, err)
		return nil
	}
	return service
}

func toResponse(outcome domain.TransitionOutcome, a *domain.Appointment, previous domain.AppointmentStatus) *Response {
	return &Response{
		Outcome:        outcome,
		ID:             a.ID,
		Professional:   a.Professional,
		ServiceName:    a.ServiceName,
		Date:           a.Date,
		Time:           a.Time,
		ClientName:     a.ClientName,
		ClientPhone:    a.ClientPhone,
		Status:         string(a.Status),
		PreviousStatus: string(previous),
		UpdatedAt:      a.UpdatedAt,
	}
}
