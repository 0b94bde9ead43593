package admin_login

import (
	"context"

	authService "github.com/palmblack/PalmBlack-BookingService/internal/service/auth"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*authService.LoginResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
