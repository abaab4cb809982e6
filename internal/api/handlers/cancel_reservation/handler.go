package cancel_reservation

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
	msgReservationNotFound  = "reserva no encontrada"
)

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

// Handle PUT /api/v1/reservas/{id}/cancelar
// Cancelling an already cancelled reserva answers 200 with the current state.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID := middleware.UserID(r.Context())
	role := middleware.UserRole(r.Context())

	result, err := h.service.Cancel(r.Context(), reservationID, &models.CancelReservationRequest{
		UserID: userID,
		Role:   role,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PUT /reservas/{id}/cancelar - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PUT /reservas/{id}/cancelar - Access denied: reservation_id=%d, user_id=%d",
				reservationID, userID)
			handlers.RespondForbidden(w)

		default:
			h.logger.Error("PUT /reservas/{id}/cancelar - Failed to cancel: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservas/{id}/cancelar - Reservation cancelled: reservation_id=%d, user_id=%d",
		reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
