package admin_logout

import (
	"net/http"

	"github.com/palmblack/PalmBlack-BookingService/internal/api/handlers"
	"github.com/palmblack/PalmBlack-BookingService/internal/api/middleware"
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

// Handle POST /api/v1/admin/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(middleware.AdminTokenHeader)

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.logger.Error("POST /admin/logout - Failed to drop session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/logout - Session dropped")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
