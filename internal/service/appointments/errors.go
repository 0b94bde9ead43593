package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAlreadyCancelled is returned when the appointment was cancelled before
	ErrAlreadyCancelled = errors.New("appointment already cancelled")

	// ErrInvalidFilter is returned for an unknown list filter
	ErrInvalidFilter = errors.New("invalid appointment filter")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
