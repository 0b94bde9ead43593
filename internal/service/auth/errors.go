package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when username or password do not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound is returned for an unknown or expired session token
	ErrSessionNotFound = errors.New("session not found")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
