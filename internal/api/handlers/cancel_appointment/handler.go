package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/palmblack/PalmBlack-BookingService/internal/api/handlers"
	appointmentsService "github.com/palmblack/PalmBlack-BookingService/internal/service/appointments"
)

const (
	msgAppointmentNotFound = "cita no encontrada"
	msgAlreadyCancelled    = "la cita ya está cancelada"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["appointmentId"]

	err := h.service.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/%s/cancel - Not found", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /appointments/%s/cancel - Already cancelled", id)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		default:
			h.logger.Error("PATCH /appointments/%s/cancel - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%s/cancel - Appointment cancelled", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
