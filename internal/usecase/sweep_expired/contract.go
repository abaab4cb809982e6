package sweep_expired

import (
	"context"
	"time"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
)

type ReservationRepository interface {
	GetExpiredPending(ctx context.Context, cutoff time.Time) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64) error
}

// TransactionManager locks the candidate rows so a payment confirmation
// running at the same moment serializes with the sweep.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
