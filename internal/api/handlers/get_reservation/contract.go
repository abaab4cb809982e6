package get_reservation

import (
	"context"

	"github.com/rmarchan/ReservaCanchasService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByID(ctx context.Context, id int64, userID int64, role string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
