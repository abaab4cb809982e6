package create_reservation

import (
	"time"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	createReservation "github.com/rmarchan/ReservaCanchasService/internal/usecase/create_reservation"
	"github.com/rmarchan/ReservaCanchasService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CourtID         int64   `json:"canchaId"`
	CustomerID      *int64  `json:"clienteId,omitempty"` // staff booking on behalf of a customer
	Date            string  `json:"fecha"`               // "2025-10-15"
	StartTime       string  `json:"horaInicio"`          // "18:00"
	DurationMinutes int     `json:"duracionMinutos"`
	Notes           *string `json:"notas,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	CourtID         int64   `json:"canchaId"`
	CustomerID      int64   `json:"clienteId"`
	Date            string  `json:"fecha"`
	StartTime       string  `json:"horaInicio"`
	EndTime         string  `json:"horaFin"`
	DurationMinutes int     `json:"duracionMinutos"`
	Status          string  `json:"estado"`
	Cost            string  `json:"costo"`
	Notes           *string `json:"notas,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing fecha and horaInicio.
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64, role string, now time.Time) (createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return createReservation.Request{}, err
	}
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return createReservation.Request{}, err
	}

	customerID := userID
	if r.CustomerID != nil && domain.IsStaffRole(role) {
		customerID = *r.CustomerID
	}

	return createReservation.Request{
		CustomerID:      customerID,
		CourtID:         r.CourtID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		Now:             now,
	}, nil
}

// FromUseCaseResponse converts the usecase result into the HTTP response.
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	r := resp.Reservation
	duration, _ := types.MinutesBetween(r.StartTime, r.EndTime)
	return &ReservationResponse{
		ID:              r.ID,
		CourtID:         r.CourtID,
		CustomerID:      r.CustomerID,
		Date:            r.Date.Format(domain.DateFormat),
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime.String(),
		DurationMinutes: duration,
		Status:          string(r.Status),
		Cost:            resp.Cost.StringFixed(2),
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}
