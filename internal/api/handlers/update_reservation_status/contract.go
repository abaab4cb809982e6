package update_reservation_status

import (
	"context"

	"github.com/rmarchan/ReservaCanchasService/internal/service/reservations/models"
)

type ReservationService interface {
	Transition(ctx context.Context, reservationID int64, req *models.TransitionRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
