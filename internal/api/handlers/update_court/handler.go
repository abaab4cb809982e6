package update_court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rmarchan/ReservaCanchasService/internal/api/handlers"
	"github.com/rmarchan/ReservaCanchasService/internal/api/middleware"
	"github.com/rmarchan/ReservaCanchasService/internal/service/courts"
)

const (
	msgInvalidCourtID     = "identificador de cancha inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgCourtNotFound      = "cancha no encontrada"
	msgInvalidHours       = "la hora de apertura debe ser anterior a la de cierre"
	msgNegativePrice      = "los precios no pueden ser negativos"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/canchas/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courtID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	var req UpdateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /canchas/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserID(r.Context())
	role := middleware.UserRole(r.Context())

	serviceReq, err := req.ToServiceRequest(userID, role)
	if err != nil {
		h.logger.Warn("PUT /canchas/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), courtID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			h.logger.Warn("PUT /canchas/{id} - Not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, courts.ErrAccessDenied):
			h.logger.Warn("PUT /canchas/{id} - Access denied: court_id=%d, user_id=%d", courtID, userID)
			handlers.RespondForbidden(w)

		case errors.Is(err, courts.ErrInvalidHours):
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, courts.ErrNegativePrice):
			handlers.RespondBadRequest(w, msgNegativePrice)

		case errors.Is(err, courts.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /canchas/{id} - Failed to update court: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /canchas/{id} - Court updated: court_id=%d, user_id=%d", courtID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
