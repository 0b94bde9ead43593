package appointments

import (
	"context"
	"time"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
)

// AppointmentRepository is the slice of the appointment storage this service needs
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListActive(ctx context.Context, filter domain.AppointmentFilter, today time.Time) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id string) error
}

// TimeProvider abstracts the current time (for testing)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
