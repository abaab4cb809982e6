package get_weekly_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmarchan/ReservaCanchasService/internal/infra/storage/court"
	"github.com/rmarchan/ReservaCanchasService/internal/schedule"
)

const daysPerWeek = 7

type UseCase struct {
	reservationRepo ReservationRepository
	courtRepo       CourtRepository
	logger          Logger
}

func New(reservationRepo ReservationRepository, courtRepo CourtRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		logger:          logger,
	}
}

// Execute builds the seven-day availability grid starting at StartDate.
// The read is advisory: slots can be taken between this query and a later
// booking attempt, which re-checks under its own transaction.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Validate the request shape.
	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: court id must be positive", ErrInvalidInput)
	}
	if req.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}

	// 2. Resolve the court. Inactive courts still render, with every slot
	// shown as taken by their own closure.
	crt, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, court.ErrCourtNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCourtNotFound, req.CourtID)
		}
		uc.logger.Error("[GetWeeklySchedule] Failed to load court %d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: Execute - get court: %v", ErrInternal, err)
	}

	slots, err := schedule.GenerateSlots(crt)
	if err != nil {
		uc.logger.Error("[GetWeeklySchedule] Failed to build slot grid for court %d: %v", crt.ID, err)
		return nil, fmt.Errorf("%w: Execute - slot grid: %v", ErrInternal, err)
	}

	// 3. Walk the week, marking each slot against that day's reservations.
	days := make([]DaySchedule, 0, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		date := req.StartDate.AddDate(0, 0, i)

		reservations, err := uc.reservationRepo.GetByCourtAndDate(ctx, crt.ID, date, false)
		if err != nil {
			uc.logger.Error("[GetWeeklySchedule] Failed to load reservations for court %d: %v", crt.ID, err)
			return nil, fmt.Errorf("%w: Execute - load day reservations: %v", ErrInternal, err)
		}

		views := make([]SlotView, 0, len(slots))
		for _, slot := range slots {
			occupied := !crt.Active || schedule.IsOccupied(reservations, slot.StartTime, slot.EndTime)
			views = append(views, SlotView{
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				Tier:      slot.Tier,
				Price30:   slot.Price30,
				Price60:   slot.Price60,
				Available: !occupied,
			})
		}
		days = append(days, DaySchedule{Date: date, Slots: views})
	}

	return &Response{Court: crt, Days: days}, nil
}
