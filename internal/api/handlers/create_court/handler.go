package create_court

import (
	"errors"
	"net/http"

	"github.com/rmarchan/ReservaCanchasService/internal/api/handlers"
	"github.com/rmarchan/ReservaCanchasService/internal/api/middleware"
	"github.com/rmarchan/ReservaCanchasService/internal/service/courts"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
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

// Handle POST /api/v1/canchas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /canchas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserID(r.Context())
	role := middleware.UserRole(r.Context())

	serviceReq, err := req.ToServiceRequest(userID, role)
	if err != nil {
		h.logger.Warn("POST /canchas - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrAccessDenied):
			h.logger.Warn("POST /canchas - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w)

		case errors.Is(err, courts.ErrInvalidHours):
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, courts.ErrNegativePrice):
			handlers.RespondBadRequest(w, msgNegativePrice)

		case errors.Is(err, courts.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /canchas - Failed to create court: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /canchas - Court created: court_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
