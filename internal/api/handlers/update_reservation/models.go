package update_reservation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	editReservation "github.com/rmarchan/ReservaCanchasService/internal/usecase/edit_reservation"
	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

// UpdateReservationRequest HTTP request model. Omitted fields keep their
// current value.
type UpdateReservationRequest struct {
	Date            *string `json:"fecha,omitempty"`
	StartTime       *string `json:"horaInicio,omitempty"`
	DurationMinutes *int    `json:"duracionMinutos,omitempty"`
	Notes           *string `json:"notas,omitempty"`
	ManualPrice     *string `json:"precioManual,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          int64   `json:"id"`
	CourtID     int64   `json:"canchaId"`
	CustomerID  int64   `json:"clienteId"`
	Date        string  `json:"fecha"`
	StartTime   string  `json:"horaInicio"`
	EndTime     string  `json:"horaFin"`
	Status      string  `json:"estado"`
	Cost        string  `json:"costo"`
	ManualPrice bool    `json:"precioManual"`
	Notes       *string `json:"notas,omitempty"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing the optional fields.
func (r *UpdateReservationRequest) ToUseCaseRequest(reservationID, userID int64, role string, now time.Time) (editReservation.Request, error) {
	req := editReservation.Request{
		ReservationID:   reservationID,
		UserID:          userID,
		UserRole:        role,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		Now:             now,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return editReservation.Request{}, err
		}
		req.Date = &date
	}
	if r.StartTime != nil {
		start, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return editReservation.Request{}, err
		}
		req.StartTime = &start
	}
	if r.ManualPrice != nil {
		price, err := decimal.NewFromString(*r.ManualPrice)
		if err != nil {
			return editReservation.Request{}, err
		}
		req.ManualPrice = &price
	}

	return req, nil
}

// FromUseCaseResponse converts the usecase result into the HTTP response.
func FromUseCaseResponse(resp *editReservation.Response) *ReservationResponse {
	r := resp.Reservation
	return &ReservationResponse{
		ID:          r.ID,
		CourtID:     r.CourtID,
		CustomerID:  r.CustomerID,
		Date:        r.Date.Format(domain.DateFormat),
		StartTime:   r.StartTime.String(),
		EndTime:     r.EndTime.String(),
		Status:      string(r.Status),
		Cost:        r.Cost.StringFixed(2),
		ManualPrice: r.ManualPrice,
		Notes:       r.Notes,
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}
