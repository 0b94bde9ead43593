package availability

import "errors"

var (
	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrInvalidWeekday is returned when a stored row carries a weekday outside 0..6
	ErrInvalidWeekday = errors.New("availability.repository: invalid weekday")
)
