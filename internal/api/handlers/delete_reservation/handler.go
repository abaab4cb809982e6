package delete_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rmarchan/ReservaCanchasService/internal/api/handlers"
	"github.com/rmarchan/ReservaCanchasService/internal/api/middleware"
	"github.com/rmarchan/ReservaCanchasService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "identificador de reserva inválido"
	msgReservationNotFound  = "reserva no encontrada"
	msgNotCancelled         = "solo se pueden eliminar reservas canceladas"
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

// Handle DELETE /api/v1/reservas/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID := middleware.UserID(r.Context())
	role := middleware.UserRole(r.Context())

	if err := h.service.Purge(r.Context(), reservationID, userID, role); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservas/{id} - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("DELETE /reservas/{id} - Access denied: reservation_id=%d, user_id=%d",
				reservationID, userID)
			handlers.RespondForbidden(w)

		case errors.Is(err, reservations.ErrNotCancelled):
			h.logger.Warn("DELETE /reservas/{id} - Not cancelled: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNotCancelled)

		default:
			h.logger.Error("DELETE /reservas/{id} - Failed to purge: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservas/{id} - Reservation purged: reservation_id=%d, user_id=%d",
		reservationID, userID)
	w.WriteHeader(http.StatusNoContent)
}
