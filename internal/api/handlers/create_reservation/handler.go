package create_reservation

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rmarchan/ReservaCanchasService/internal/api/handlers"
	"github.com/rmarchan/ReservaCanchasService/internal/api/middleware"
	createReservation "github.com/rmarchan/ReservaCanchasService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDateFormat  = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgCourtNotFound      = "cancha no encontrada"
	msgCourtInactive      = "la cancha no está disponible para reservas"
	msgInvalidTimeSlot    = "horario inválido"
	msgPastDate           = "la fecha de la reserva ya pasó"
	msgSlotOccupied       = "el horario %s-%s ya está reservado (reserva %d)"
	msgTryAgain           = "el sistema está ocupado, intente nuevamente"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserID(r.Context())
	role := middleware.UserRole(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(userID, role, time.Now())
	if err != nil {
		h.logger.Warn("POST /reservas - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createReservation.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /reservas - Slot taken: court_id=%d, blocking_id=%d", req.CourtID, conflict.BlockingID)
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf(msgSlotOccupied, conflict.StartTime, conflict.EndTime, conflict.BlockingID))

		case errors.Is(err, createReservation.ErrCourtNotFound):
			h.logger.Warn("POST /reservas - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createReservation.ErrCourtInactive):
			h.logger.Warn("POST /reservas - Court inactive: court_id=%d", req.CourtID)
			handlers.RespondBadRequest(w, msgCourtInactive)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservas - Past date: court_id=%d, fecha=%s", req.CourtID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot),
			errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservas - Invalid request: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrContention):
			h.logger.Warn("POST /reservas - Contention: court_id=%d", req.CourtID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgTryAgain)

		default:
			h.logger.Error("POST /reservas - Failed to create reservation: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservas - Reservation created: reservation_id=%d, court_id=%d, user_id=%d",
		result.Reservation.ID, req.CourtID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
