package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, true},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReservationStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, ReservationStatus("paused").IsValid())
	assert.False(t, ReservationStatus("").IsValid())
}

func TestReservation_IsExpired(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	base := Reservation{
		Status:    StatusPending,
		CreatedAt: created,
	}

	tests := []struct {
		name string
		mod  func(r *Reservation)
		now  time.Time
		want bool
	}{
		{
			name: "before deadline",
			now:  time.Date(2025, 1, 3, 23, 59, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "exactly at deadline",
			now:  time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "one minute past deadline",
			now:  time.Date(2025, 1, 4, 0, 1, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "confirmed payment shields",
			mod: func(r *Reservation) {
				status := PaymentConfirmed
				r.PaymentStatus = &status
			},
			now:  time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "pending payment does not shield",
			mod: func(r *Reservation) {
				status := PaymentPending
				r.PaymentStatus = &status
			},
			now:  time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "non-pending status never expires",
			mod:  func(r *Reservation) { r.Status = StatusConfirmed },
			now:  time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base
			if tt.mod != nil {
				tt.mod(&r)
			}
			assert.Equal(t, tt.want, r.IsExpired(tt.now, DefaultGracePeriodDays))
		})
	}
}

func TestReservation_IsPastDated(t *testing.T) {
	r := Reservation{Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)}

	assert.False(t, r.IsPastDated(time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC)))
	assert.True(t, r.IsPastDated(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.IsPastDated(time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)))
}

func TestReservation_Flags(t *testing.T) {
	r := Reservation{Status: StatusPending}
	assert.True(t, r.IsActive())
	assert.True(t, r.IsEditable())
	assert.False(t, r.IsCancelled())

	r.Status = StatusConfirmed
	assert.True(t, r.IsActive())
	assert.False(t, r.IsEditable())

	r.Status = StatusCancelled
	assert.False(t, r.IsActive())
	assert.True(t, r.IsCancelled())
}
