package models

import (
	"errors"
	"time"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
)

var (
	// ErrInvalidStatus is returned when a status string is unknown
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request models

// CancelReservationRequest asks for an (idempotent) cancellation.
type CancelReservationRequest struct {
	UserID int64
	Role   string
}

// TransitionRequest asks for an explicit state-machine transition.
type TransitionRequest struct {
	UserID int64
	Role   string
	Status string
}

// AttachPaymentRequest links a payment from the payment subsystem.
type AttachPaymentRequest struct {
	UserID    int64
	Role      string
	PaymentID int64
}

// GetCustomerReservationsRequest lists a customer's history.
type GetCustomerReservationsRequest struct {
	CustomerID int64
	UserID     int64
	Role       string
	Status     *string
}

// Response models

// ReservationResponse is the service-level view of a reserva.
type ReservationResponse struct {
	ID            int64   `json:"id"`
	CourtID       int64   `json:"canchaId"`
	CustomerID    int64   `json:"clienteId"`
	Date          string  `json:"fecha"`
	StartTime     string  `json:"horaInicio"`
	EndTime       string  `json:"horaFin"`
	Status        string  `json:"estado"`
	Cost          string  `json:"costo"`
	ManualPrice   bool    `json:"precioManual"`
	Notes         *string `json:"notas,omitempty"`
	PaymentID     *int64  `json:"pagoId,omitempty"`
	PaymentStatus *string `json:"pagoEstado,omitempty"`
	CancelledAt   *string `json:"cancelledAt,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ReservationListResponse wraps a list of reservas.
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservas"`
	Total        int                    `json:"total"`
}

// FromDomainReservation converts a domain reservation to the response model.
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
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
		PaymentID:   r.PaymentID,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}

	if r.PaymentStatus != nil {
		status := string(*r.PaymentStatus)
		resp.PaymentStatus = &status
	}
	if r.CancelledAt != nil {
		cancelled := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainReservationList converts a list of domain reservations.
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	out := make([]*ReservationResponse, len(reservations))
	for i, r := range reservations {
		out[i] = FromDomainReservation(r)
	}
	return &ReservationListResponse{
		Reservations: out,
		Total:        len(out),
	}
}

// ToDomainReservationStatus parses and validates a status string.
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
