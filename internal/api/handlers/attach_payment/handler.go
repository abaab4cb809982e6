package attach_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rmarchan/ReservaCanchasService/internal/api/handlers"
	"github.com/rmarchan/ReservaCanchasService/internal/api/middleware"
	"github.com/rmarchan/ReservaCanchasService/internal/service/reservations"
	"github.com/rmarchan/ReservaCanchasService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "identificador de reserva inválido"
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgReservationNotFound  = "reserva no encontrada"
	msgPaymentNotFound      = "pago no encontrado"
	msgPaymentMismatch      = "el pago no corresponde a esta reserva"
	msgReservationCancelled = "la reserva fue cancelada, el pago no se puede aplicar"
)

// AttachPaymentRequest HTTP request model
type AttachPaymentRequest struct {
	PaymentID int64 `json:"pagoId"`
}

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservas/{id}/pago
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req AttachPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservas/{id}/pago - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserID(r.Context())
	role := middleware.UserRole(r.Context())

	result, err := h.service.AttachPayment(r.Context(), reservationID, &models.AttachPaymentRequest{
		UserID:    userID,
		Role:      role,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservas/{id}/pago - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrPaymentNotFound):
			h.logger.Warn("POST /reservas/{id}/pago - Payment not found: reservation_id=%d, payment_id=%d",
				reservationID, req.PaymentID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		case errors.Is(err, reservations.ErrPaymentMismatch):
			h.logger.Warn("POST /reservas/{id}/pago - Payment mismatch: reservation_id=%d, payment_id=%d",
				reservationID, req.PaymentID)
			handlers.RespondBadRequest(w, msgPaymentMismatch)

		case errors.Is(err, reservations.ErrReservationCancelled):
			h.logger.Warn("POST /reservas/{id}/pago - Reservation already cancelled: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgReservationCancelled)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("POST /reservas/{id}/pago - Access denied: reservation_id=%d, user_id=%d",
				reservationID, userID)
			handlers.RespondForbidden(w)

		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservas/{id}/pago - Failed to attach payment: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservas/{id}/pago - Payment attached: reservation_id=%d, payment_id=%d",
		reservationID, req.PaymentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
