package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	commitmentRepo "github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/commitment"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/appointments/models"
)

// Service сервис чтения записей для оператора
type Service struct {
	commitmentRepo CommitmentRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(commitmentRepo CommitmentRepository, logger Logger) *Service {
	return &Service{
		commitmentRepo: commitmentRepo,
		logger:         logger,
	}
}

// GetByID получает запись по ID. Холды записями не считаются
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("GetByID: malformed id %q", id)
		return nil, ErrAppointmentNotFound
	}

	commitment, err := s.commitmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, commitmentRepo.ErrCommitmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if commitment.IsHold() {
		return nil, ErrAppointmentNotFound
	}

	return models.FromDomainAppointment(commitment.ToAppointment()), nil
}

// List получает записи с фильтрацией по дате, специалисту и статусу
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	commitments, err := s.commitmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(commitments))
	return models.FromDomainCommitmentList(commitments), nil
}
