package sweep_expired

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rmarchan/ReservaCanchasService/internal/api/handlers"
	"github.com/rmarchan/ReservaCanchasService/internal/api/middleware"
	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	sweepExpired "github.com/rmarchan/ReservaCanchasService/internal/usecase/sweep_expired"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidGraceDays   = "días de gracia inválidos"
)

// SweepRequest HTTP request model. The body is optional.
type SweepRequest struct {
	GraceDays *int `json:"diasGracia,omitempty"`
}

// SweepResponse HTTP response model
type SweepResponse struct {
	Cancelled    int     `json:"canceladas"`
	CancelledIDs []int64 `json:"reservasCanceladas"`
}

type Handler struct {
	useCase   SweepExpiredUseCase
	graceDays int
	logger    Logger
}

func NewHandler(useCase SweepExpiredUseCase, graceDays int, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		graceDays: graceDays,
		logger:    logger,
	}
}

// Handle POST /api/v1/reservas/cancelar-vencidas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role := middleware.UserRole(r.Context())
	if !domain.IsStaffRole(role) {
		handlers.RespondForbidden(w)
		return
	}

	grace := h.graceDays
	var req SweepRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /reservas/cancelar-vencidas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.GraceDays != nil {
		if *req.GraceDays < 0 {
			handlers.RespondBadRequest(w, msgInvalidGraceDays)
			return
		}
		grace = *req.GraceDays
	}

	result, err := h.useCase.Execute(r.Context(), sweepExpired.Request{
		Now:       time.Now(),
		GraceDays: grace,
	})
	if err != nil {
		h.logger.Error("POST /reservas/cancelar-vencidas - Sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /reservas/cancelar-vencidas - Sweep done: cancelled=%d", len(result.CancelledIDs))
	handlers.RespondJSON(w, http.StatusOK, &SweepResponse{
		Cancelled:    len(result.CancelledIDs),
		CancelledIDs: result.CancelledIDs,
	})
}
