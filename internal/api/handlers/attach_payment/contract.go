package attach_payment

import (
	"context"

	"github.com/rmarchan/ReservaCanchasService/internal/service/reservations/models"
)

type ReservationService interface {
	AttachPayment(ctx context.Context, reservationID int64, req *models.AttachPaymentRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
