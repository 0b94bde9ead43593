package admin_login

import (
	"errors"
	"net/http"

	"github.com/palmblack/PalmBlack-BookingService/internal/api/handlers"
	authService "github.com/palmblack/PalmBlack-BookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidCredentials = "usuario o contraseña incorrectos"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials for username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
		default:
			h.logger.Error("POST /admin/login - Login failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Session issued for username=%s", req.Username)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Token:       result.Token,
		DisplayName: result.DisplayName,
	})
}
