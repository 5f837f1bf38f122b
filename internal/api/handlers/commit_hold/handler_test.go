package commit_hold

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

	commitHold "github.com/m04kA/SMC-ReservationEngine/internal/usecase/commit_hold"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
)

type fakeUseCase struct {
	got *commitHold.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *commitHold.Request) (*commitHold.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &commitHold.Response{
		ID:          "a-1",
		ServiceName: "Corte",
		Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:        "09:30",
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		Status:      "pending",
		CreatedAt:   time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
	}, nil
}

func serve(uc CommitHoldUseCase, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/holds/{holdId}/commit", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/holds/h-1/commit", strings.NewReader(body)))
	return w
}

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{}
	w := serve(uc, `{"clientName":"  Ana  ","clientPhone":"(11) 98765-4321"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "h-1", uc.got.HoldID)
	assert.Equal(t, "Ana", uc.got.ClientName)

	var body AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "pending", body.Status)
	assert.Equal(t, "2026-03-10", body.Date)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"expired", commitHold.ErrHoldExpired, http.StatusGone},
		{"not found", commitHold.ErrHoldNotFound, http.StatusNotFound},
		{"invalid", commitHold.ErrInvalidInput, http.StatusBadRequest},
		{"internal", commitHold.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeUseCase{err: tt.err}, `{"clientName":"Ana","clientPhone":""}`)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
