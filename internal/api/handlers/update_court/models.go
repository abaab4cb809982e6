package update_court

import (
	"github.com/shopspring/decimal"

	"github.com/rmarchan/ReservaCanchasService/internal/service/courts/models"
	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

// UpdateCourtRequest HTTP request model. Setting activa=false retires the
// cancha from new bookings without touching its history.
type UpdateCourtRequest struct {
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
}

// ToServiceRequest converts the HTTP request, parsing times and prices.
func (r *UpdateCourtRequest) ToServiceRequest(userID int64, role string) (*models.UpdateCourtRequest, error) {
	open, err := types.NewTimeStringFromString(r.OpenTime)
	if err != nil {
		return nil, err
	}
	closeT, err := types.NewTimeStringFromString(r.CloseTime)
	if err != nil {
		return nil, err
	}
	cutoff, err := types.NewTimeStringFromString(r.NightCutoff)
	if err != nil {
		return nil, err
	}

	prices := make([]decimal.Decimal, 4)
	for i, raw := range []string{r.PriceDay30, r.PriceDay60, r.PriceNight30, r.PriceNight60} {
		if raw == "" {
			prices[i] = decimal.Zero
			continue
		}
		p, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, err
		}
		prices[i] = p
	}

	return &models.UpdateCourtRequest{
		UserID:       userID,
		Role:         role,
		Name:         r.Name,
		OpenTime:     open,
		CloseTime:    closeT,
		NightCutoff:  cutoff,
		PriceDay30:   prices[0],
		PriceDay60:   prices[1],
		PriceNight30: prices[2],
		PriceNight60: prices[3],
		Capacity:     r.Capacity,
		Active:       r.Active,
	}, nil
}
