package get_weekly_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/rmarchan/ReservaCanchasService/internal/api/handlers"
	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	getWeeklySchedule "github.com/rmarchan/ReservaCanchasService/internal/usecase/get_weekly_schedule"
)

const (
	msgInvalidCourtID    = "identificador de cancha inválido"
	msgInvalidStartDate  = "formato de fecha_inicio inválido, se espera YYYY-MM-DD"
	msgMissingStartDate  = "el parámetro fecha_inicio es obligatorio"
	msgCourtNotFound     = "cancha no encontrada"
)

type Handler struct {
	useCase GetWeeklyScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetWeeklyScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservas/semanal/{canchaId}?fecha_inicio=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courtID, err := strconv.ParseInt(vars["canchaId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	rawDate := r.URL.Query().Get("fecha_inicio")
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingStartDate)
		return
	}
	startDate, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), getWeeklySchedule.Request{
		CourtID:   courtID,
		StartDate: startDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getWeeklySchedule.ErrCourtNotFound):
			h.logger.Warn("GET /reservas/semanal - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getWeeklySchedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCourtID)

		default:
			h.logger.Error("GET /reservas/semanal - Failed to build schedule: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
