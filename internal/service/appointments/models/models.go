package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос оператора на список записей
type ListAppointmentsRequest struct {
	Date         *time.Time `json:"date,omitempty"`         // Конкретная дата (опционально)
	Professional *string    `json:"professional,omitempty"` // Специалист, "" означает без специалиста (опционально)
	Status       *string    `json:"status,omitempty"`       // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentFilter, error) {
	filter := domain.AppointmentFilter{
		Professional: r.Professional,
	}

	if r.Date != nil {
		date := domain.DateOnly(*r.Date)
		filter.Date = &date
	}

	if r.Status != nil {
		status, err := domain.ParseAppointmentStatus(*r.Status)
		if err != nil {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID           string    `json:"id"`
	Professional string    `json:"professionalId,omitempty"`
	ServiceName  string    `json:"service"`
	Date         string    `json:"date"` // "2026-03-10"
	Time         string    `json:"time"` // "09:30"
	ClientName   string    `json:"clientName"`
	ClientPhone  string    `json:"clientPhone"`
	Status       string    `json:"status"`
	ReminderSent bool      `json:"reminderSent"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:           a.ID,
		Professional: a.Professional,
		ServiceName:  a.ServiceName,
		Date:         a.Date.Format(domain.DateFormat),
		Time:         a.Time.String(),
		ClientName:   a.ClientName,
		ClientPhone:  a.ClientPhone,
		Status:       string(a.Status),
		ReminderSent: a.ReminderSent,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// FromDomainCommitmentList конвертирует записи хранилища в DTO, холды пропускаются
func FromDomainCommitmentList(commitments []*domain.Commitment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(commitments)),
	}

	for _, c := range commitments {
		if c.IsHold() {
			continue
		}
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(c.ToAppointment()))
	}

	return resp
}
