package create_reservation

import (
	"context"
	"time"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
)

// ReservationRepository is the storage surface of the booking path.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time, includeInactive bool) ([]*domain.Reservation, error)
}

// CourtRepository resolves the cancha being booked.
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// TransactionManager runs the availability re-check and the insert as one
// serializable unit per (court, date).
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher emits domain events after the transaction commits.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// Logger is the logging surface of the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
