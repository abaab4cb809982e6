package update_reservation

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/rmarchan/ReservaCanchasService/internal/api/handlers"
	"github.com/rmarchan/ReservaCanchasService/internal/api/middleware"
	editReservation "github.com/rmarchan/ReservaCanchasService/internal/usecase/edit_reservation"
)

const (
	msgInvalidReservationID = "identificador de reserva inválido"
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgReservationNotFound  = "reserva no encontrada"
	msgNotEditable          = "la reserva ya no se puede modificar"
	msgInvalidTimeSlot      = "horario inválido"
	msgSlotOccupied         = "el horario %s-%s ya está reservado (reserva %d)"
	msgTryAgain             = "el sistema está ocupado, intente nuevamente"
)

type Handler struct {
	useCase EditReservationUseCase
	logger  Logger
}

func NewHandler(useCase EditReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservas/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservas/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserID(r.Context())
	role := middleware.UserRole(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(reservationID, userID, role, time.Now())
	if err != nil {
		h.logger.Warn("PUT /reservas/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *editReservation.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("PUT /reservas/{id} - Slot taken: reservation_id=%d, blocking_id=%d",
				reservationID, conflict.BlockingID)
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf(msgSlotOccupied, conflict.StartTime, conflict.EndTime, conflict.BlockingID))

		case errors.Is(err, editReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservas/{id} - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, editReservation.ErrAccessDenied):
			h.logger.Warn("PUT /reservas/{id} - Access denied: reservation_id=%d, user_id=%d", reservationID, userID)
			handlers.RespondForbidden(w)

		case errors.Is(err, editReservation.ErrNotEditable):
			h.logger.Warn("PUT /reservas/{id} - Not editable: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNotEditable)

		case errors.Is(err, editReservation.ErrInvalidTimeSlot),
			errors.Is(err, editReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservas/{id} - Invalid request: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, editReservation.ErrContention):
			h.logger.Warn("PUT /reservas/{id} - Contention: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgTryAgain)

		default:
			h.logger.Error("PUT /reservas/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservas/{id} - Reservation updated: reservation_id=%d, user_id=%d", reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
