package update_availability

import (
	"errors"
	"net/http"

	"github.com/palmblack/PalmBlack-BookingService/internal/api/handlers"
	availabilityService "github.com/palmblack/PalmBlack-BookingService/internal/service/availability"
	"github.com/palmblack/PalmBlack-BookingService/internal/service/availability/models"
)

const msgInvalidRequestBody = "cuerpo de la solicitud no válido"

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

// Handle PUT /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateWeekRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SaveWeek(r.Context(), &req)
	if err != nil {
		var verr *availabilityService.ValidationError

		switch {
		case errors.As(err, &verr):
			h.logger.Warn("PUT /availability - Validation failed: %v", err)
			handlers.RespondValidationErrors(w, verr.Messages)
		default:
			h.logger.Error("PUT /availability - Failed to save week schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability - Week schedule saved, %d open days", result.Summary.OpenDays)
	handlers.RespondJSON(w, http.StatusOK, result)
}
