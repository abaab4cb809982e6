package paymentservice

import "errors"

var (
	// ErrPaymentNotFound is returned when the payment does not exist
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse is returned on malformed responses
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")
)
