package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/palmblack/PalmBlack-BookingService/internal/api/handlers"
	authService "github.com/palmblack/PalmBlack-BookingService/internal/service/auth"
)

// AdminTokenHeader carries the admin session token.
const AdminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "sesión no válida o expirada"

type adminNameKey struct{}

// AuthVerifier resolves a session token to the admin display name.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// Logger is the logging interface used by middleware
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth rejects requests without a live admin session.
func AdminAuth(verifier AuthVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(AdminTokenHeader)
			if token == "" {
				logger.Warn("AdminAuth: missing %s header for %s %s", AdminTokenHeader, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			displayName, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if errors.Is(err, authService.ErrSessionNotFound) {
					logger.Warn("AdminAuth: unknown session for %s %s", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgUnauthorized)
					return
				}
				logger.Error("AdminAuth: verify failed for %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), adminNameKey{}, displayName)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminName returns the display name stored by AdminAuth, if any.
func AdminName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(adminNameKey{}).(string)
	return name, ok
}
