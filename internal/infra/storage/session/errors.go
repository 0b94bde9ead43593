package session

import "errors"

var (
	// ErrSessionNotFound is returned when no session matches the given token
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrExecCommand is returned when a Redis command fails
	ErrExecCommand = errors.New("session.store: failed to execute command")
)
