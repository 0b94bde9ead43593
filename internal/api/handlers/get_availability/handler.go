package get_availability

import (
	"net/http"

	"github.com/palmblack/PalmBlack-BookingService/internal/api/handlers"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetWeek(r.Context())
	if err != nil {
		h.logger.Error("GET /availability - Failed to get week schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
