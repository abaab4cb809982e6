package update_reservation_status

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
	msgInvalidTransition    = "transición de estado no permitida"
	msgInvalidStatus        = "estado de reserva inválido"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"estado"`
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

// Handle PUT /api/v1/reservas/{id}/estado
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservas/{id}/estado - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserID(r.Context())
	role := middleware.UserRole(r.Context())

	result, err := h.service.Transition(r.Context(), reservationID, &models.TransitionRequest{
		UserID: userID,
		Role:   role,
		Status: req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PUT /reservas/{id}/estado - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PUT /reservas/{id}/estado - Access denied: reservation_id=%d, user_id=%d",
				reservationID, userID)
			handlers.RespondForbidden(w)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PUT /reservas/{id}/estado - Invalid transition: reservation_id=%d, estado=%s",
				reservationID, req.Status)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidTransition)

		case errors.Is(err, models.ErrInvalidStatus), errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PUT /reservas/{id}/estado - Failed to transition: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservas/{id}/estado - Status updated: reservation_id=%d, estado=%s, user_id=%d",
		reservationID, req.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
