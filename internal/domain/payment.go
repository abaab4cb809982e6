package domain

import "github.com/shopspring/decimal"

// PaymentStatus is the state of a payment as reported by the external
// payment subsystem.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
	PaymentRejected  PaymentStatus = "rejected"
)

// IsValid reports whether s is one of the known payment states.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentConfirmed, PaymentRejected:
		return true
	}
	return false
}

// PaymentSummary is the slice of a payment this service reads and links.
// Payment storage itself belongs to the payment subsystem; only the
// linkage (reservation ↔ payment id/state) lives here.
type PaymentSummary struct {
	ID            int64
	ReservationID int64
	Amount        decimal.Decimal
	Method        string
	Status        PaymentStatus
	ReceiptID     *string
}
