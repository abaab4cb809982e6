package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

// Request models

// CreateCourtRequest creates a cancha.
type CreateCourtRequest struct {
	UserID       int64
	Role         string
	Name         string
	OpenTime     types.TimeString
	CloseTime    types.TimeString
	NightCutoff  types.TimeString
	PriceDay30   decimal.Decimal
	PriceDay60   decimal.Decimal
	PriceNight30 decimal.Decimal
	PriceNight60 decimal.Decimal
	Capacity     int
}

// UpdateCourtRequest edits a cancha; Active=false soft-deactivates it.
type UpdateCourtRequest struct {
	UserID       int64
	Role         string
	Name         string
	OpenTime     types.TimeString
	CloseTime    types.TimeString
	NightCutoff  types.TimeString
	PriceDay30   decimal.Decimal
	PriceDay60   decimal.Decimal
	PriceNight30 decimal.Decimal
	PriceNight60 decimal.Decimal
	Capacity     int
	Active       bool
}

// Response models

// CourtResponse is the service-level view of a cancha.
type CourtResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"nombre"`
	OpenTime     string `json:"horaInicio"`
	CloseTime    string `json:"horaFin"`
	NightCutoff  string `json:"corteNocturno"`
	PriceDay30   string `json:"precioDia30"`
	PriceDay60   string `json:"precioDia60"`
	PriceNight30 string `json:"precioNoche30"`
	PriceNight60 string `json:"precioNoche60"`
	Capacity     int    `json:"capacidad"`
	Active       bool   `json:"activa"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// CourtListResponse wraps a list of canchas.
type CourtListResponse struct {
	Courts []*CourtResponse `json:"canchas"`
	Total  int              `json:"total"`
}

// FromDomainCourt converts a domain court to the response model.
func FromDomainCourt(c *domain.Court) *CourtResponse {
	return &CourtResponse{
		ID:           c.ID,
		Name:         c.Name,
		OpenTime:     c.OpenTime.String(),
		CloseTime:    c.CloseTime.String(),
		NightCutoff:  c.NightCutoff.String(),
		PriceDay30:   c.PriceDay30.StringFixed(2),
		PriceDay60:   c.PriceDay60.StringFixed(2),
		PriceNight30: c.PriceNight30.StringFixed(2),
		PriceNight60: c.PriceNight60.StringFixed(2),
		Capacity:     c.Capacity,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainCourtList converts a list of domain courts.
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	out := make([]*CourtResponse, len(courts))
	for i, c := range courts {
		out[i] = FromDomainCourt(c)
	}
	return &CourtListResponse{
		Courts: out,
		Total:  len(out),
	}
}
