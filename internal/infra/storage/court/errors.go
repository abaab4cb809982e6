package court

import "errors"

var (
	// ErrCourtNotFound is returned when the cancha does not exist
	ErrCourtNotFound = errors.New("court.repository: court not found")

	// ErrBuildQuery is returned when building the SQL statement fails
	ErrBuildQuery = errors.New("court.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails
	ErrExecQuery = errors.New("court.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("court.repository: failed to scan row")
)
