package get_user_reservations

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
	msgInvalidUserID = "identificador de usuario inválido"
	msgInvalidStatus = "estado de reserva inválido"
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

// Handle GET /api/v1/usuarios/{userId}/reservas?estado=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	req := &models.GetCustomerReservationsRequest{
		CustomerID: customerID,
		UserID:     middleware.UserID(r.Context()),
		Role:       middleware.UserRole(r.Context()),
	}
	if estado := r.URL.Query().Get("estado"); estado != "" {
		req.Status = &estado
	}

	result, err := h.service.GetCustomerReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /usuarios/{userId}/reservas - Access denied: customer_id=%d, user_id=%d",
				customerID, req.UserID)
			handlers.RespondForbidden(w)

		case errors.Is(err, models.ErrInvalidStatus), errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /usuarios/{userId}/reservas - Failed to list reservations: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
