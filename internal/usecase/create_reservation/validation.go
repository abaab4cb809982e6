package create_reservation

import (
	"fmt"
	"time"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/internal/schedule"
	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

func validateRequest(req Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer id must be positive", ErrInvalidInput)
	}
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: court id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Now.IsZero() {
		return fmt.Errorf("%w: current time is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	if !schedule.IsAligned(req.StartTime) {
		return fmt.Errorf("%w: start time must fall on a %d-minute boundary",
			ErrInvalidTimeSlot, domain.SlotDurationMinutes)
	}
	if req.DurationMinutes <= 0 || req.DurationMinutes%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: duration must be a positive multiple of %d minutes",
			ErrInvalidTimeSlot, domain.SlotDurationMinutes)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

// validateDate rejects bookings for days already in the past. Same-day
// bookings stay allowed regardless of the hour.
func validateDate(req Request) error {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	if day(req.Date).Before(day(req.Now)) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, req.Date.Format(domain.DateFormat))
	}
	return nil
}

// validateWithinHours checks the requested window against the court's
// operating hours and returns the computed end time.
func validateWithinHours(court *domain.Court, req Request) (types.TimeString, error) {
	end, err := req.StartTime.AddMinutes(req.DurationMinutes)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if req.StartTime.IsBefore(court.OpenTime) || end.IsAfter(court.CloseTime) {
		return "", fmt.Errorf("%w: window %s-%s falls outside court hours %s-%s",
			ErrInvalidTimeSlot, req.StartTime, end, court.OpenTime, court.CloseTime)
	}
	return end, nil
}
