package courts

import "errors"

var (
	// ErrCourtNotFound is returned when the cancha does not exist
	ErrCourtNotFound = errors.New("court not found")

	// ErrAccessDenied is returned when a non-staff caller mutates the registry
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidHours is returned when hora_inicio is not before hora_fin
	ErrInvalidHours = errors.New("opening time must be before closing time")

	// ErrNegativePrice is returned when any tier price is negative
	ErrNegativePrice = errors.New("prices must be non-negative")

	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("courts service: internal error")
)
