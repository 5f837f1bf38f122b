package update_calendar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationEngine/internal/api/handlers/get_calendar"
	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/sqlite"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/calendar"
	"github.com/m04kA/SMC-ReservationEngine/internal/service/calendar/models"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
	"github.com/m04kA/SMC-ReservationEngine/pkg/simpletxmanager"
)

func newCalendarService(t *testing.T) *calendar.Service {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	fallback := domain.CalendarConfiguration{}
	fallback.SetWeekday(time.Monday, domain.DaySchedule{
		IsOpen:    true,
		Intervals: []domain.TimeInterval{{Start: "09:00", End: "18:00"}},
	})

	return calendar.NewService(sqlite.NewCalendarStore(db), simpletxmanager.NewTransactionManager(db), fallback, logger.NewNop())
}

func getCalendar(t *testing.T, svc *calendar.Service) models.CalendarDTO {
	t.Helper()
	w := httptest.NewRecorder()
	get_calendar.NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendar", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body models.CalendarDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandler_ReplaceThenRead(t *testing.T) {
	svc := newCalendarService(t)
	assert.True(t, getCalendar(t, svc).Monday.IsOpen)

	body := `{"tuesday":{"isOpen":true,"intervals":[{"start":"09:00","end":"12:00"},{"start":"14:00","end":"19:00"}]}}`
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPut, "/api/v1/calendar", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)

	current := getCalendar(t, svc)
	assert.False(t, current.Monday.IsOpen)
	assert.True(t, current.Tuesday.IsOpen)
	assert.Len(t, current.Tuesday.Intervals, 2)
}

func TestHandler_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"broken json", `{"monday":`},
		{"malformed time", `{"monday":{"isOpen":true,"intervals":[{"start":"9h","end":"12:00"}]}}`},
		{"start after end", `{"monday":{"isOpen":true,"intervals":[{"start":"12:00","end":"09:00"}]}}`},
		{"overlap", `{"monday":{"isOpen":true,"intervals":[{"start":"09:00","end":"12:00"},{"start":"11:00","end":"13:00"}]}}`},
	}

	svc := newCalendarService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPut, "/api/v1/calendar", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	assert.True(t, getCalendar(t, svc).Monday.IsOpen)
}
