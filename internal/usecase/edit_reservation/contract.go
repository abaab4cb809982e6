package edit_reservation

import (
	"context"
	"time"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
)

type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time, includeInactive bool) ([]*domain.Reservation, error)
	Update(ctx context.Context, reservation *domain.Reservation) error
}

type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
