package availability

import (
	"errors"
	"strings"
)

var (
	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)

// ValidationError carries every schedule problem found in one pass, so
// the admin sees all broken weekdays at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "availability: " + strings.Join(e.Messages, "; ")
}
