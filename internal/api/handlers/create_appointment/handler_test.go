package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/m04kA/SMC-ReservationEngine/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
)

type fakeUseCase struct {
	got *createAppointment.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createAppointment.Response{
		ID:            "a-1",
		ServiceName:   req.ServiceName,
		Date:          req.Date,
		Time:          req.Time,
		ClientName:    req.ClientName,
		Status:        "confirmed",
		LedgerCreated: true,
		CreatedAt:     time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
	}, nil
}

const validBody = `{"service":"Corte","date":"2026-03-10","time":"18:45","clientName":"Ana","clientPhone":"11987654321"}`

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{}
	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(validBody)))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "", uc.got.Professional)

	var body AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "confirmed", body.Status)
	assert.Equal(t, "18:45", body.Time)
	assert.True(t, body.LedgerCreated)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"unknown field", `{"service":"Corte","extra":1}`, nil, http.StatusBadRequest},
		{"bad date", `{"service":"Corte","date":"2026-13-01","time":"09:00"}`, nil, http.StatusBadRequest},
		{"taken", validBody, createAppointment.ErrSlotTaken, http.StatusConflict},
		{"unknown professional", validBody, createAppointment.ErrProfessionalNotFound, http.StatusNotFound},
		{"invalid", validBody, createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"internal", validBody, createAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop()).
				Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
