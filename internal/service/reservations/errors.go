package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reserva does not exist
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied is returned when the caller may not touch this reserva
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition is returned when the requested estado violates
	// the state machine. It is surfaced, never auto-corrected.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrReservationCancelled is returned when a mutation races against a
	// cancellation and loses; the caller should re-read.
	ErrReservationCancelled = errors.New("reservation is cancelled")

	// ErrPaymentNotFound is returned when the linked payment does not exist
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrPaymentMismatch is returned when the payment belongs to another
	// reservation
	ErrPaymentMismatch = errors.New("payment does not belong to this reservation")

	// ErrNotCancelled is returned when a purge targets a non-cancelled record
	ErrNotCancelled = errors.New("only cancelled reservations can be purged")

	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("reservations service: internal error")
)
