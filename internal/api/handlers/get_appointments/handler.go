package get_appointments

import (
	"errors"
	"net/http"

	"github.com/palmblack/PalmBlack-BookingService/internal/api/handlers"
	appointmentsService "github.com/palmblack/PalmBlack-BookingService/internal/service/appointments"
)

const msgInvalidFilter = "filtro no válido, se espera todas, hoy o proximas"

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

// Handle GET /api/v1/appointments?filter=todas|hoy|proximas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidFilter):
			h.logger.Warn("GET /appointments - Invalid filter %q", filter)
			handlers.RespondBadRequest(w, msgInvalidFilter)
		default:
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - %d appointments, filter=%q", len(result.Appointments), filter)
	handlers.RespondJSON(w, http.StatusOK, result)
}
