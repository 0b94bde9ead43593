package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/palmblack/PalmBlack-BookingService/internal/api/handlers"
	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
	getSlots "github.com/palmblack/PalmBlack-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "falta el parámetro date"
	msgInvalidDate = "formato de fecha no válido, se espera YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		h.logger.Warn("GET /available-slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateParam)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date %q: %v", dateParam, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /available-slots - Failed to get slots for %s: %v", dateParam, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - %d slots for %s", len(result.Slots), dateParam)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
