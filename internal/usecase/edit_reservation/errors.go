package edit_reservation

import (
	"errors"
	"fmt"

	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

var (
	ErrInvalidInput        = errors.New("invalid input data")
	ErrInvalidTimeSlot     = errors.New("invalid time slot")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNotEditable         = errors.New("reservation can no longer be edited")
	ErrAccessDenied        = errors.New("access denied")
	ErrSlotUnavailable     = errors.New("time slot is not available")
	ErrContention          = errors.New("storage contention, retry the request")
	ErrInternal            = errors.New("internal error")
)

// ConflictError names the reservation that blocks the edited window.
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
