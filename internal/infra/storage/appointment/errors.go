package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment matches the given id
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrAlreadyCancelled is returned when cancelling an appointment that is already cancelled
	ErrAlreadyCancelled = errors.New("appointment.repository: appointment already cancelled")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
