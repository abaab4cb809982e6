package domain

import "time"

// EventType names the domain events this service emits. The notification
// layer subscribes to these; the engine never calls notification code
// directly.
type EventType string

const (
	EventReservationCreated   EventType = "reserva.creada"
	EventReservationCancelled EventType = "reserva.cancelada"
	EventReservationExpired   EventType = "reserva.vencida"
	EventPaymentConfirmed     EventType = "pago.confirmado"
)

// Event is the wire payload published for every reservation lifecycle
// change. Type doubles as the topic routing key on the events exchange.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`

	ReservationID int64  `json:"reservationId"`
	CourtID       int64  `json:"courtId"`
	CustomerID    int64  `json:"customerId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Status        string `json:"status"`
}

// NewEventFromReservation builds the common event payload for r.
func NewEventFromReservation(eventType EventType, r *Reservation, occurredAt time.Time) Event {
	return Event{
		Type:          eventType,
		OccurredAt:    occurredAt,
		ReservationID: r.ID,
		CourtID:       r.CourtID,
		CustomerID:    r.CustomerID,
		Date:          r.Date.Format(DateFormat),
		StartTime:     r.StartTime.String(),
		EndTime:       r.EndTime.String(),
		Status:        string(r.Status),
	}
}
