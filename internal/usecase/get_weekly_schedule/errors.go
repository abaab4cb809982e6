package get_weekly_schedule

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input data")
	ErrCourtNotFound = errors.New("court not found")
	ErrInternal      = errors.New("internal error")
)
