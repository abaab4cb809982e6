package create_reservation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

// Request carries everything the booking needs, including the caller's
// notion of current time so the usecase stays deterministic.
type Request struct {
	CustomerID      int64
	CourtID         int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Notes           *string
	Now             time.Time
}

type Response struct {
	Reservation *domain.Reservation
	EndTime     types.TimeString
	Cost        decimal.Decimal
}
