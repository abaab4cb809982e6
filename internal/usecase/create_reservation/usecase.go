package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/internal/infra/storage/court"
	"github.com/rmarchan/ReservaCanchasService/internal/pricing"
	"github.com/rmarchan/ReservaCanchasService/internal/schedule"
	"github.com/rmarchan/ReservaCanchasService/pkg/txmanager"
)

type UseCase struct {
	reservationRepo ReservationRepository
	courtRepo       CourtRepository
	txManager       TransactionManager
	events          EventPublisher
	logger          Logger
}

func New(
	reservationRepo ReservationRepository,
	courtRepo CourtRepository,
	txManager TransactionManager,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		txManager:       txManager,
		events:          events,
		logger:          logger,
	}
}

// Execute books a court window. The availability check and the insert run
// inside one serializable transaction so concurrent requests for an
// overlapping window cannot both succeed.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Validate the request shape.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[CreateReservation] Rejected request for court %d: %v", req.CourtID, err)
		return nil, err
	}
	if err := validateDate(req); err != nil {
		uc.logger.Warn("[CreateReservation] Rejected request for court %d: %v", req.CourtID, err)
		return nil, err
	}

	// 2. Resolve the court and check it can take bookings.
	crt, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, court.ErrCourtNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCourtNotFound, req.CourtID)
		}
		uc.logger.Error("[CreateReservation] Failed to load court %d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: Execute - get court: %v", ErrInternal, err)
	}
	if !crt.Active {
		return nil, fmt.Errorf("%w: id %d", ErrCourtInactive, crt.ID)
	}
	endTime, err := validateWithinHours(crt, req)
	if err != nil {
		return nil, err
	}

	// 3. Price the window before touching storage.
	cost, err := pricing.Price(crt, req.StartTime, req.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	// 4. Re-check availability and insert under a serializable transaction.
	var created *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.reservationRepo.GetByCourtAndDate(txCtx, req.CourtID, req.Date, false)
		if err != nil {
			return fmt.Errorf("%w: Execute - load day reservations: %v", ErrInternal, err)
		}
		if blocking := schedule.FindConflict(existing, req.StartTime, endTime, 0); blocking != nil {
			return &ConflictError{
				BlockingID: blocking.ID,
				StartTime:  blocking.StartTime,
				EndTime:    blocking.EndTime,
			}
		}

		reservation := &domain.Reservation{
			CourtID:    req.CourtID,
			CustomerID: req.CustomerID,
			Date:       req.Date,
			StartTime:  req.StartTime,
			EndTime:    endTime,
			Status:     domain.StatusPending,
			Cost:       cost,
			Notes:      req.Notes,
		}
		created, err = uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			return fmt.Errorf("%w: Execute - create reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("[CreateReservation] Serialization failure for court %d on %s",
				req.CourtID, req.Date.Format(domain.DateFormat))
			return nil, fmt.Errorf("%w: %v", ErrContention, err)
		}
		return nil, err
	}

	uc.logger.Info("[CreateReservation] Reservation %d created: court %d, %s %s-%s, cost %s",
		created.ID, created.CourtID, created.Date.Format(domain.DateFormat),
		created.StartTime, created.EndTime, created.Cost)

	// 5. Emit the domain event outside the transaction, best effort.
	event := domain.NewEventFromReservation(domain.EventReservationCreated, created, req.Now)
	if pubErr := uc.events.Publish(ctx, event); pubErr != nil {
		uc.logger.Warn("[CreateReservation] Failed to publish %s for reservation %d: %v",
			domain.EventReservationCreated, created.ID, pubErr)
	}

	return &Response{
		Reservation: created,
		EndTime:     created.EndTime,
		Cost:        created.Cost,
	}, nil
}
