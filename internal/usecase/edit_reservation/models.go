package edit_reservation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

// Request describes a partial edit. Nil fields keep their current value.
type Request struct {
	ReservationID   int64
	UserID          int64
	UserRole        string
	Date            *time.Time
	StartTime       *types.TimeString
	DurationMinutes *int
	Notes           *string
	// ManualPrice is a staff-only override. When set the cost no longer
	// follows the tariff and survives later time edits untouched.
	ManualPrice *decimal.Decimal
	Now         time.Time
}

type Response struct {
	Reservation *domain.Reservation
}
