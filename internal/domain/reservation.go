package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// validTransitions encodes the state machine. Transitions are monotonic
// forward except cancellation, which is reachable from every state
// (completed → cancelled is the administrative reversal).
var validTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {StatusCancelled},
	StatusCancelled: {},
}

// CanTransitionTo reports whether the state machine allows moving from s
// to next.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether s is one of the known states.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Reservation represents a booked interval on a cancha. Start and end are
// same-day HH:MM values aligned to 30-minute boundaries.
type Reservation struct {
	ID         int64
	CourtID    int64
	CustomerID int64

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	Status ReservationStatus
	Cost   decimal.Decimal
	// ManualPrice marks that Cost was overridden by staff and must not be
	// recomputed on later edits.
	ManualPrice bool
	Notes       *string

	PaymentID     *int64
	PaymentStatus *PaymentStatus

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the reservation still blocks its interval.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsCancelled returns true if the reservation has been cancelled.
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// IsEditable returns true while customer/staff edits are still allowed.
// Historical corrections on past-dated records are handled separately.
func (r *Reservation) IsEditable() bool {
	return r.Status == StatusPending
}

// IsPastDated reports whether the reserved date lies before the day of now.
func (r *Reservation) IsPastDated(now time.Time) bool {
	y1, m1, d1 := r.Date.Date()
	y2, m2, d2 := now.Date()
	reserved := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	today := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return reserved.Before(today)
}

// HasConfirmedPayment returns true if a confirmed payment is linked.
func (r *Reservation) HasConfirmedPayment() bool {
	return r.PaymentStatus != nil && *r.PaymentStatus == PaymentConfirmed
}

// IsExpired reports whether the unpaid grace period has elapsed at now.
// The boundary is strict: a reservation created at T with grace g expires
// only when now > T + g.
func (r *Reservation) IsExpired(now time.Time, gracePeriodDays int) bool {
	if r.Status != StatusPending || r.HasConfirmedPayment() {
		return false
	}
	deadline := r.CreatedAt.AddDate(0, 0, gracePeriodDays)
	return now.After(deadline)
}
