package create_appointment

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidDate is returned when the appointment date is in the past
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("create_appointment: internal error")
)

// ValidationError carries every field problem found in one pass, so
// the client sees the full list instead of fixing fields one by one.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "create_appointment: " + strings.Join(e.Messages, "; ")
}
