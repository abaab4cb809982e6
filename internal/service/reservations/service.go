package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	reservationRepo "github.com/rmarchan/ReservaCanchasService/internal/infra/storage/reservation"
	paymentClient "github.com/rmarchan/ReservaCanchasService/internal/integrations/paymentservice"
	"github.com/rmarchan/ReservaCanchasService/internal/service/reservations/models"
)

// Service owns the reservation lifecycle operations that act on a single
// existing reserva: reads, cancellation, explicit transitions, payment
// linkage and administrative purge. Creation and edits, which need the
// serializable availability re-check, live in their own usecases.
type Service struct {
	reservationRepo ReservationRepository
	paymentClient   PaymentServiceClient
	txManager       TransactionManager
	events          EventPublisher
	logger          Logger
}

// NewService creates the reservations service.
func NewService(
	reservationRepo ReservationRepository,
	paymentClient PaymentServiceClient,
	txManager TransactionManager,
	events EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		paymentClient:   paymentClient,
		txManager:       txManager,
		events:          events,
		logger:          logger,
	}
}

// GetByID fetches a reservation. Customers see only their own records;
// staff see everything.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, role string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := checkAccess(reservation, userID, role); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainReservation(reservation), nil
}

// GetCustomerReservations returns a customer's history, optionally
// filtered by estado.
func (s *Service) GetCustomerReservations(ctx context.Context, req *models.GetCustomerReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetCustomerReservations: customer=%d, status=%v", req.CustomerID, req.Status)

	if req.CustomerID != req.UserID && !domain.IsStaffRole(req.Role) {
		s.logger.Warn("GetCustomerReservations: user=%d may not list customer=%d", req.UserID, req.CustomerID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerReservations: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerReservations: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerReservations - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(reservations), nil
}

// Cancel cancels a reservation. Cancelling an already-cancelled record is
// an idempotent no-op that returns the current state. Owners cancel their
// own reservas; staff cancel any.
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	var result *domain.Reservation
	var alreadyCancelled bool

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if err := checkAccess(reservation, req.UserID, req.Role); err != nil {
			return err
		}

		if reservation.IsCancelled() {
			// Idempotent: report the existing state, touch nothing.
			alreadyCancelled = true
			result = reservation
			return nil
		}

		if err := s.reservationRepo.Cancel(txCtx, reservationID); err != nil {
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		now := time.Now()
		reservation.Status = domain.StatusCancelled
		reservation.CancelledAt = &now
		result = reservation
		return nil
	})
	if err != nil {
		s.logger.Warn("Cancel: reservation id=%d failed: %v", reservationID, err)
		return nil, err
	}

	if alreadyCancelled {
		s.logger.Info("Cancel: reservation id=%d was already cancelled, no-op", reservationID)
		return models.FromDomainReservation(result), nil
	}

	s.publish(ctx, domain.NewEventFromReservation(domain.EventReservationCancelled, result, time.Now()))

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return models.FromDomainReservation(result), nil
}

// Transition applies an explicit state-machine transition. Staff only.
// Invalid edges are rejected and reported, never coerced.
func (s *Service) Transition(ctx context.Context, reservationID int64, req *models.TransitionRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Transition: reservation id=%d to estado=%s by user=%d", reservationID, req.Status, req.UserID)

	if !domain.IsStaffRole(req.Role) {
		s.logger.Warn("Transition: user=%d is not staff", req.UserID)
		return nil, ErrAccessDenied
	}

	newStatus, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("Transition: invalid status=%s for reservation id=%d", req.Status, reservationID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var result *domain.Reservation

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
		}

		if !reservation.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, newStatus)
		}

		if newStatus == domain.StatusCancelled {
			if err := s.reservationRepo.Cancel(txCtx, reservationID); err != nil {
				return fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
			}
			now := time.Now()
			reservation.CancelledAt = &now
		} else {
			if err := s.reservationRepo.UpdateStatus(txCtx, reservationID, newStatus); err != nil {
				return fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
			}
		}

		reservation.Status = newStatus
		result = reservation
		return nil
	})
	if err != nil {
		s.logger.Warn("Transition: reservation id=%d failed: %v", reservationID, err)
		return nil, err
	}

	if newStatus == domain.StatusCancelled {
		s.publish(ctx, domain.NewEventFromReservation(domain.EventReservationCancelled, result, time.Now()))
	}

	s.logger.Info("Transition: reservation id=%d now estado=%s", reservationID, newStatus)
	return models.FromDomainReservation(result), nil
}

// AttachPayment links a payment to the reservation and, when the payment
// subsystem reports it confirmed, drives pending → confirmed. Runs with
// the reservation row locked so it serializes against the expiration
// sweeper: whichever commits first wins, the loser observes the new state.
func (s *Service) AttachPayment(ctx context.Context, reservationID int64, req *models.AttachPaymentRequest) (*models.ReservationResponse, error) {
	s.logger.Info("AttachPayment: reservation id=%d, payment id=%d", reservationID, req.PaymentID)

	payment, err := s.paymentClient.GetPayment(ctx, req.PaymentID)
	if err != nil {
		if errors.Is(err, paymentClient.ErrPaymentNotFound) {
			s.logger.Warn("AttachPayment: payment id=%d not found", req.PaymentID)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("AttachPayment: payment client error for id=%d: %v", req.PaymentID, err)
		return nil, fmt.Errorf("%w: AttachPayment - payment client: %v", ErrInternal, err)
	}

	if payment.ReservationID != 0 && payment.ReservationID != reservationID {
		s.logger.Warn("AttachPayment: payment id=%d belongs to reservation id=%d, not id=%d",
			req.PaymentID, payment.ReservationID, reservationID)
		return nil, ErrPaymentMismatch
	}

	paymentStatus := domain.PaymentStatus(payment.Status)
	if !paymentStatus.IsValid() {
		s.logger.Warn("AttachPayment: payment id=%d reports unknown status=%s", req.PaymentID, payment.Status)
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, payment.Status)
	}

	var result *domain.Reservation
	var confirmed bool

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: AttachPayment - repository error: %v", ErrInternal, err)
		}

		if err := checkAccess(reservation, req.UserID, req.Role); err != nil {
			return err
		}

		// A payment confirmed in the same instant the sweeper would have
		// cancelled: the row lock decided the order. If cancellation won,
		// surface the stale state instead of resurrecting the reserva.
		if reservation.IsCancelled() {
			return ErrReservationCancelled
		}

		if err := s.reservationRepo.AttachPayment(txCtx, reservationID, payment.ID, paymentStatus); err != nil {
			return fmt.Errorf("%w: AttachPayment - repository error: %v", ErrInternal, err)
		}
		reservation.PaymentID = &payment.ID
		reservation.PaymentStatus = &paymentStatus

		if paymentStatus == domain.PaymentConfirmed && reservation.Status == domain.StatusPending {
			if err := s.reservationRepo.UpdateStatus(txCtx, reservationID, domain.StatusConfirmed); err != nil {
				return fmt.Errorf("%w: AttachPayment - repository error: %v", ErrInternal, err)
			}
			reservation.Status = domain.StatusConfirmed
			confirmed = true
		}

		result = reservation
		return nil
	})
	if err != nil {
		s.logger.Warn("AttachPayment: reservation id=%d failed: %v", reservationID, err)
		return nil, err
	}

	if confirmed {
		s.publish(ctx, domain.NewEventFromReservation(domain.EventPaymentConfirmed, result, time.Now()))
	}

	s.logger.Info("AttachPayment: reservation id=%d linked payment id=%d (estado=%s)",
		reservationID, payment.ID, result.Status)
	return models.FromDomainReservation(result), nil
}

// Purge physically removes an already-cancelled reservation. Staff only.
func (s *Service) Purge(ctx context.Context, reservationID int64, userID int64, role string) error {
	s.logger.Info("Purge: reservation id=%d by user=%d", reservationID, userID)

	if !domain.IsStaffRole(role) {
		s.logger.Warn("Purge: user=%d is not staff", userID)
		return ErrAccessDenied
	}

	if err := s.reservationRepo.Purge(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Purge: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		if errors.Is(err, reservationRepo.ErrNotCancelled) {
			s.logger.Warn("Purge: reservation id=%d is not cancelled", reservationID)
			return ErrNotCancelled
		}
		s.logger.Error("Purge: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Purge - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Purge: reservation id=%d removed", reservationID)
	return nil
}

func (s *Service) publish(ctx context.Context, event domain.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		// Event delivery is best effort; the mutation already committed.
		s.logger.Error("publish: failed to publish %s for reservation id=%d: %v",
			event.Type, event.ReservationID, err)
	}
}

// checkAccess allows the owner and staff.
func checkAccess(reservation *domain.Reservation, userID int64, role string) error {
	if reservation.CustomerID == userID {
		return nil
	}
	if domain.IsStaffRole(role) {
		return nil
	}
	return ErrAccessDenied
}
