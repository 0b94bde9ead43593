package auth

import "context"

// Authenticator verifies admin credentials and returns the admin
// display name. Swapping the implementation changes where credentials
// live without touching the session flow.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// SessionStore keeps issued admin sessions.
type SessionStore interface {
	Set(ctx context.Context, token, displayName string) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
