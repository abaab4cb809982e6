package get_weekly_schedule

import (
	"context"
	"time"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
)

type ReservationRepository interface {
	GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time, includeInactive bool) ([]*domain.Reservation, error)
}

type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
