package get_courts

import (
	"context"

	"github.com/rmarchan/ReservaCanchasService/internal/service/courts/models"
)

type CourtService interface {
	List(ctx context.Context, role string) (*models.CourtListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.CourtResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
