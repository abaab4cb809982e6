package sweep_expired

import (
	"context"
	"fmt"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
)

type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	events          EventPublisher
	logger          Logger
}

func New(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		events:          events,
		logger:          logger,
	}
}

// Execute cancels pending reservations whose grace period has run out
// without a confirmed payment. The candidate rows are locked for the whole
// run, so a payment confirmed mid-sweep either lands before the lock and
// saves the reservation, or waits and finds it cancelled.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Validate and apply the default grace period.
	if req.Now.IsZero() {
		return nil, fmt.Errorf("%w: current time is required", ErrInvalidInput)
	}
	grace := req.GraceDays
	if grace == 0 {
		grace = domain.DefaultGracePeriodDays
	}
	if grace < 0 {
		return nil, fmt.Errorf("%w: grace period cannot be negative", ErrInvalidInput)
	}

	cutoff := req.Now.AddDate(0, 0, -grace)

	// 2. Lock the candidates, re-check each one and cancel.
	var swept []*domain.Reservation
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		candidates, err := uc.reservationRepo.GetExpiredPending(txCtx, cutoff)
		if err != nil {
			return fmt.Errorf("%w: Execute - load expired candidates: %v", ErrInternal, err)
		}

		for _, r := range candidates {
			// The query already filters, the re-check guards against a
			// payment that was confirmed between query and lock.
			if !r.IsExpired(req.Now, grace) {
				continue
			}
			if err := uc.reservationRepo.Cancel(txCtx, r.ID); err != nil {
				return fmt.Errorf("%w: Execute - cancel reservation %d: %v", ErrInternal, r.ID, err)
			}
			r.Status = domain.StatusCancelled
			swept = append(swept, r)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("[SweepExpired] Sweep failed: %v", err)
		return nil, err
	}

	// 3. Emit one event per cancelled reservation, best effort.
	ids := make([]int64, 0, len(swept))
	for _, r := range swept {
		ids = append(ids, r.ID)
		event := domain.NewEventFromReservation(domain.EventReservationExpired, r, req.Now)
		if pubErr := uc.events.Publish(ctx, event); pubErr != nil {
			uc.logger.Warn("[SweepExpired] Failed to publish %s for reservation %d: %v",
				domain.EventReservationExpired, r.ID, pubErr)
		}
	}

	uc.logger.Info("[SweepExpired] Sweep finished: %d reservations cancelled (cutoff %s)",
		len(ids), cutoff.Format("2006-01-02 15:04:05"))

	return &Response{CancelledIDs: ids}, nil
}
