package delete_reservation

import "context"

type ReservationService interface {
	Purge(ctx context.Context, reservationID int64, userID int64, role string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
