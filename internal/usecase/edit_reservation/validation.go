package edit_reservation

import (
	"fmt"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/internal/schedule"
)

func validateRequest(req Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if req.Now.IsZero() {
		return fmt.Errorf("%w: current time is required", ErrInvalidInput)
	}
	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
		}
		if !schedule.IsAligned(*req.StartTime) {
			return fmt.Errorf("%w: start time must fall on a %d-minute boundary",
				ErrInvalidTimeSlot, domain.SlotDurationMinutes)
		}
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 || *req.DurationMinutes%domain.SlotDurationMinutes != 0 {
			return fmt.Errorf("%w: duration must be a positive multiple of %d minutes",
				ErrInvalidTimeSlot, domain.SlotDurationMinutes)
		}
	}
	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date cannot be empty", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if req.ManualPrice != nil {
		if !domain.IsStaffRole(req.UserRole) {
			return fmt.Errorf("%w: only staff can override the price", ErrAccessDenied)
		}
		if req.ManualPrice.IsNegative() {
			return fmt.Errorf("%w: manual price cannot be negative", ErrInvalidInput)
		}
	}
	return nil
}
