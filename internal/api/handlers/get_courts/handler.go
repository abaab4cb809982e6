package get_courts

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
	msgInvalidCourtID = "identificador de cancha inválido"
	msgCourtNotFound  = "cancha no encontrada"
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

// HandleList GET /api/v1/canchas
// Customers see active canchas only, staff sees the full registry.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	role := middleware.UserRole(r.Context())

	result, err := h.service.List(r.Context(), role)
	if err != nil {
		h.logger.Error("GET /canchas - Failed to list courts: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/canchas/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courtID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	result, err := h.service.GetByID(r.Context(), courtID)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			h.logger.Warn("GET /canchas/{id} - Not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("GET /canchas/{id} - Failed to get court: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
