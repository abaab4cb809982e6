package reservations

import (
	"context"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/internal/integrations/paymentservice"
)

// ReservationRepository is the storage surface this service needs.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64) error
	AttachPayment(ctx context.Context, id int64, paymentID int64, status domain.PaymentStatus) error
	Purge(ctx context.Context, id int64) error
}

// PaymentServiceClient resolves payment summaries from the external
// payment subsystem.
type PaymentServiceClient interface {
	GetPayment(ctx context.Context, paymentID int64) (*paymentservice.Payment, error)
}

// TransactionManager runs a function inside a storage transaction. The
// repository locks the touched reservation row, so payment confirmation,
// transitions and the sweeper serialize per reservation id.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher emits domain events after successful mutations.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// Logger is the logging surface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
