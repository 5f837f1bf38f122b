package smsgateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
)

func TestClient_Send(t *testing.T) {
	var got Message
	var auth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", time.Second, logger.NewNop())
	err := client.Send(context.Background(), "5511987654321", "Olá")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, Message{To: "5511987654321", Body: "Olá"}, got)
}

func TestClient_SendErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{name: "rejected", status: http.StatusBadRequest, want: ErrRejected},
		{name: "unavailable", status: http.StatusBadGateway, want: ErrUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			client := NewClient(server.URL, "", time.Second, logger.NewNop())
			err := client.Send(context.Background(), "5511987654321", "Olá")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestClient_SendNotConfigured(t *testing.T) {
	client := NewClient("", "", time.Second, logger.NewNop())
	assert.ErrorIs(t, client.Send(context.Background(), "1", "x"), ErrNotConfigured)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "*********4321", mask("5511987654321"))
	assert.Equal(t, "12", mask("12"))
}
