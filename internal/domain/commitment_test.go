package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommitment_Occupies(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(5 * time.Minute)
	past := now.Add(-time.Second)

	key := SlotKey{Professional: "p1", Date: date, Time: "09:00"}

	cases := []struct {
		name string
		c    Commitment
		key  SlotKey
		want bool
	}{
		{
			name: "pending appointment blocks",
			c:    Commitment{Kind: KindAppointment, Status: StatusPending, Professional: "p1", Date: date, Time: "09:00"},
			key:  key,
			want: true,
		},
		{
			name: "cancelled appointment does not block",
			c:    Commitment{Kind: KindAppointment, Status: StatusCancelled, Professional: "p1", Date: date, Time: "09:00"},
			key:  key,
			want: false,
		},
		{
			name: "live hold blocks",
			c:    Commitment{Kind: KindHold, Status: StatusHeld, Professional: "p1", Date: date, Time: "09:00", ExpiresAt: &future},
			key:  key,
			want: true,
		},
		{
			name: "expired hold does not block",
			c:    Commitment{Kind: KindHold, Status: StatusHeld, Professional: "p1", Date: date, Time: "09:00", ExpiresAt: &past},
			key:  key,
			want: false,
		},
		{
			name: "other professional does not block",
			c:    Commitment{Kind: KindAppointment, Status: StatusConfirmed, Professional: "p2", Date: date, Time: "09:00"},
			key:  key,
			want: false,
		},
		{
			name: "no professional does not block named professional",
			c:    Commitment{Kind: KindAppointment, Status: StatusConfirmed, Date: date, Time: "09:00"},
			key:  key,
			want: false,
		},
		{
			name: "no professional blocks no professional",
			c:    Commitment{Kind: KindAppointment, Status: StatusConfirmed, Date: date, Time: "09:00"},
			key:  SlotKey{Date: date, Time: "09:00"},
			want: true,
		},
		{
			name: "other time does not block",
			c:    Commitment{Kind: KindAppointment, Status: StatusConfirmed, Professional: "p1", Date: date, Time: "09:30"},
			key:  key,
			want: false,
		},
		{
			name: "other date does not block",
			c:    Commitment{Kind: KindAppointment, Status: StatusConfirmed, Professional: "p1", Date: date.AddDate(0, 0, 1), Time: "09:00"},
			key:  key,
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.Occupies(tc.key, now))
		})
	}
}

func TestHoldCommitmentRoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	h := &Hold{
		ID:           "h1",
		Professional: "p1",
		ServiceName:  "Corte Masculino",
		Date:         time.Date(2024, 3, 11, 15, 0, 0, 0, time.UTC),
		Time:         "09:00",
		CreatedAt:    created,
		TTL:          DefaultHoldTTL,
	}

	c := NewHoldCommitment(h)
	assert.Equal(t, KindHold, c.Kind)
	assert.Equal(t, StatusHeld, c.Status)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), c.Date)
	assert.False(t, c.IsExpired(created.Add(DefaultHoldTTL-time.Second)))
	assert.True(t, c.IsExpired(created.Add(DefaultHoldTTL)))

	back := c.ToHold()
	assert.Equal(t, DefaultHoldTTL, back.TTL)
	assert.Equal(t, h.ExpiresAt(), back.ExpiresAt())
}

func TestAppointmentCommitment_NeverExpires(t *testing.T) {
	c := NewAppointmentCommitment(&Appointment{ID: "a1", Status: StatusPending})
	assert.False(t, c.IsExpired(time.Now().AddDate(10, 0, 0)))
	assert.Equal(t, "a1", c.ToAppointment().ID)
}
