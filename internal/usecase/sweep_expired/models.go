package sweep_expired

import "time"

// Request carries the sweep parameters. Now is passed in by the caller so
// runs are reproducible and testable.
type Request struct {
	Now       time.Time
	GraceDays int
}

type Response struct {
	CancelledIDs []int64
}
