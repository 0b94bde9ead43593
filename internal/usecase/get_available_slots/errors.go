package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("usecase: internal error")
)
