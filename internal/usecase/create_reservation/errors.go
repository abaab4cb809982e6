package create_reservation

import (
	"errors"
	"fmt"

	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

var (
	ErrInvalidInput    = errors.New("invalid input data")
	ErrInvalidTimeSlot = errors.New("invalid time slot")
	ErrInvalidDate     = errors.New("invalid reservation date")
	ErrCourtNotFound   = errors.New("court not found")
	ErrCourtInactive   = errors.New("court is not active")
	ErrSlotUnavailable = errors.New("time slot is not available")
	ErrContention      = errors.New("storage contention, retry the request")
	ErrInternal        = errors.New("internal error")
)

// ConflictError names the reservation that blocks the requested window.
type ConflictError struct {
	BlockingID int64
	StartTime  types.TimeString
	EndTime    types.TimeString
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: occupied by reservation %d from %s to %s",
		ErrSlotUnavailable, e.BlockingID, e.StartTime, e.EndTime)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotUnavailable
}
