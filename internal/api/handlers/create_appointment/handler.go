package create_appointment

import (
	"errors"
	"net/http"

	"github.com/palmblack/PalmBlack-BookingService/internal/api/handlers"
	createAppointment "github.com/palmblack/PalmBlack-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidDate        = "formato de fecha no válido, se espera YYYY-MM-DD"
	msgPastDate           = "la fecha no puede estar en el pasado"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var verr *createAppointment.ValidationError

		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /appointments - Validation failed: %v", err)
			handlers.RespondValidationErrors(w, verr.Messages)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Past date: %s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, date=%s, time=%s",
		result.ID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
