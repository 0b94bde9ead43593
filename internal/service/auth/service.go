package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	sessionStore "github.com/palmblack/PalmBlack-BookingService/internal/infra/storage/session"
)

// Service issues and checks admin sessions.
type Service struct {
	authenticator Authenticator
	sessions      SessionStore
	logger        Logger
}

// NewService creates the auth service.
func NewService(authenticator Authenticator, sessions SessionStore, logger Logger) *Service {
	return &Service{
		authenticator: authenticator,
		sessions:      sessions,
		logger:        logger,
	}
}

// LoginResult is the successful login payload.
type LoginResult struct {
	Token       string
	DisplayName string
}

// Login verifies the credentials and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	s.logger.Info("Login: attempt for username=%s", username)

	displayName, err := s.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			s.logger.Warn("Login: invalid credentials for username=%s", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: authenticator error for username=%s: %v", username, err)
		return nil, fmt.Errorf("%w: Login - authenticator error: %v", ErrInternal, err)
	}

	token := uuid.New().String()
	if err := s.sessions.Set(ctx, token, displayName); err != nil {
		s.logger.Error("Login: failed to store session for username=%s: %v", username, err)
		return nil, fmt.Errorf("%w: Login - failed to store session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: session issued for username=%s", username)
	return &LoginResult{Token: token, DisplayName: displayName}, nil
}

// Verify resolves a session token to the admin display name.
func (s *Service) Verify(ctx context.Context, token string) (string, error) {
	displayName, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			return "", ErrSessionNotFound
		}
		s.logger.Error("Verify: session store error: %v", err)
		return "", fmt.Errorf("%w: Verify - session store error: %v", ErrInternal, err)
	}

	return displayName, nil
}

// Logout drops the session. Logging out an unknown token succeeds.
func (s *Service) Logout(ctx context.Context, token string) error {
	s.logger.Info("Logout: dropping session")

	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Error("Logout: session store error: %v", err)
		return fmt.Errorf("%w: Logout - session store error: %v", ErrInternal, err)
	}

	return nil
}
