package reservation

import "errors"

var (
	// ErrReservationNotFound is returned when the reserva does not exist
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrNotCancelled is returned when a purge targets a record that is
	// not in the cancelled state
	ErrNotCancelled = errors.New("reservation.repository: reservation is not cancelled")

	// ErrBuildQuery is returned when building the SQL statement fails
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
