package paymentservice

import "github.com/shopspring/decimal"

// Payment is the payment record as the payment subsystem reports it.
type Payment struct {
	ID            int64           `json:"id"`
	ReservationID int64           `json:"reservationId"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"` // pending | confirmed | rejected
	ReceiptID     *string         `json:"receiptId,omitempty"`
}

// ErrorResponse is the error envelope of the payment service.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
