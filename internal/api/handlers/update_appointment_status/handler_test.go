package update_appointment_status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	updateStatus "github.com/m04kA/SMC-ReservationEngine/internal/usecase/update_appointment_status"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
)

type fakeUseCase struct {
	got     *updateStatus.Request
	outcome domain.TransitionOutcome
	err     error
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateStatus.Request) (*updateStatus.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &updateStatus.Response{
		Outcome:        f.outcome,
		ID:             req.AppointmentID,
		Date:           time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:           "09:00",
		Status:         req.Status,
		PreviousStatus: "pending",
		UpdatedAt:      time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
	}, nil
}

func serve(uc UpdateStatusUseCase, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/appointments/{appointmentId}/status", NewHandler(uc, logger.NewNop()).Handle).
		Methods(http.MethodPatch)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/appointments/a-1/status", strings.NewReader(body)))
	return w
}

func TestHandler_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		outcome domain.TransitionOutcome
		want    int
	}{
		{"applied", domain.OutcomeApplied, http.StatusOK},
		{"noop", domain.OutcomeNoop, http.StatusOK},
		{"not allowed", domain.OutcomeNotAllowed, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{outcome: tt.outcome}
			w := serve(uc, `{"status":" Confirmed "}`)

			require.Equal(t, tt.want, w.Code)
			assert.Equal(t, "confirmed", uc.got.Status)
			assert.Equal(t, "a-1", uc.got.AppointmentID)

			var body StatusResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, string(tt.outcome), body.Outcome)
		})
	}
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"broken json", `[`, nil, http.StatusBadRequest},
		{"invalid status", `{"status":"held"}`, updateStatus.ErrInvalidInput, http.StatusBadRequest},
		{"not found", `{"status":"cancelled"}`, updateStatus.ErrAppointmentNotFound, http.StatusNotFound},
		{"concurrent", `{"status":"cancelled"}`, updateStatus.ErrConcurrentUpdate, http.StatusConflict},
		{"internal", `{"status":"cancelled"}`, updateStatus.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(&fakeUseCase{err: tt.err}, tt.body).Code)
		})
	}
}
