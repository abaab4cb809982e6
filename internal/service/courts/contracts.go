package courts

import (
	"context"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
)

// CourtRepository is the storage surface this service needs.
type CourtRepository interface {
	Create(ctx context.Context, court *domain.Court) (*domain.Court, error)
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Court, error)
	Update(ctx context.Context, court *domain.Court) error
}

// Logger is the logging surface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
