package edit_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/internal/infra/storage/court"
	"github.com/rmarchan/ReservaCanchasService/internal/infra/storage/reservation"
	"github.com/rmarchan/ReservaCanchasService/internal/pricing"
	"github.com/rmarchan/ReservaCanchasService/internal/schedule"
	"github.com/rmarchan/ReservaCanchasService/pkg/txmanager"
	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

type UseCase struct {
	reservationRepo ReservationRepository
	courtRepo       CourtRepository
	txManager       TransactionManager
	logger          Logger
}

func New(
	reservationRepo ReservationRepository,
	courtRepo CourtRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute applies a partial edit to a reservation. Time changes run through
// the same serializable availability check as creation, with the edited
// reservation excluded from the conflict scan.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Validate the request shape and the caller's permissions on it.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[EditReservation] Rejected edit of reservation %d: %v", req.ReservationID, err)
		return nil, err
	}

	var updated *domain.Reservation
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Load the reservation with a row lock.
		current, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservation.ErrReservationNotFound) {
				return fmt.Errorf("%w: id %d", ErrReservationNotFound, req.ReservationID)
			}
			return fmt.Errorf("%w: Execute - get reservation: %v", ErrInternal, err)
		}

		isStaff := domain.IsStaffRole(req.UserRole)
		if current.CustomerID != req.UserID && !isStaff {
			return fmt.Errorf("%w: reservation %d belongs to another customer", ErrAccessDenied, current.ID)
		}

		// Pending reservations are editable by their owner. Records on past
		// dates accept corrections from staff only.
		if !current.IsEditable() && !(isStaff && current.IsPastDated(req.Now)) {
			return fmt.Errorf("%w: id %d is %s", ErrNotEditable, current.ID, current.Status)
		}

		// 3. Fold the requested changes over the current state.
		next := *current
		if req.Date != nil {
			next.Date = *req.Date
		}
		if req.StartTime != nil {
			next.StartTime = *req.StartTime
		}
		duration, err := types.MinutesBetween(current.StartTime, current.EndTime)
		if err != nil {
			return fmt.Errorf("%w: Execute - stored window: %v", ErrInternal, err)
		}
		if req.DurationMinutes != nil {
			duration = *req.DurationMinutes
		}
		next.EndTime, err = next.StartTime.AddMinutes(duration)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
		}
		if req.Notes != nil {
			next.Notes = req.Notes
		}

		windowChanged := !next.Date.Equal(current.Date) ||
			next.StartTime != current.StartTime ||
			next.EndTime != current.EndTime

		// 4. Re-check availability and court hours when the window moved.
		if windowChanged {
			crt, err := uc.courtRepo.GetByID(txCtx, next.CourtID)
			if err != nil {
				if errors.Is(err, court.ErrCourtNotFound) {
					return fmt.Errorf("%w: Execute - court %d missing", ErrInternal, next.CourtID)
				}
				return fmt.Errorf("%w: Execute - get court: %v", ErrInternal, err)
			}
			if next.StartTime.IsBefore(crt.OpenTime) || next.EndTime.IsAfter(crt.CloseTime) {
				return fmt.Errorf("%w: window %s-%s falls outside court hours %s-%s",
					ErrInvalidTimeSlot, next.StartTime, next.EndTime, crt.OpenTime, crt.CloseTime)
			}

			existing, err := uc.reservationRepo.GetByCourtAndDate(txCtx, next.CourtID, next.Date, false)
			if err != nil {
				return fmt.Errorf("%w: Execute - load day reservations: %v", ErrInternal, err)
			}
			if blocking := schedule.FindConflict(existing, next.StartTime, next.EndTime, current.ID); blocking != nil {
				return &ConflictError{
					BlockingID: blocking.ID,
					StartTime:  blocking.StartTime,
					EndTime:    blocking.EndTime,
				}
			}

			// 5. Reprice the new window unless a manual price pins the cost.
			if req.ManualPrice == nil && !current.ManualPrice {
				cost, err := pricing.Price(crt, next.StartTime, duration)
				if err != nil {
					return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
				}
				next.Cost = cost
			}
		}

		if req.ManualPrice != nil {
			next.Cost = *req.ManualPrice
			next.ManualPrice = true
		}

		if err := uc.reservationRepo.Update(txCtx, &next); err != nil {
			return fmt.Errorf("%w: Execute - update reservation: %v", ErrInternal, err)
		}
		updated = &next
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("[EditReservation] Serialization failure editing reservation %d", req.ReservationID)
			return nil, fmt.Errorf("%w: %v", ErrContention, err)
		}
		return nil, err
	}

	uc.logger.Info("[EditReservation] Reservation %d updated: %s %s-%s, cost %s",
		updated.ID, updated.Date.Format(domain.DateFormat), updated.StartTime, updated.EndTime, updated.Cost)

	return &Response{Reservation: updated}, nil
}
