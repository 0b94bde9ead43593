package reset_availability

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

// Handle POST /api/v1/availability/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ResetWeek(r.Context())
	if err != nil {
		h.logger.Error("POST /availability/reset - Failed to reset week schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /availability/reset - Default schedule restored")
	handlers.RespondJSON(w, http.StatusOK, result)
}
