package create_appointment

import (
	"context"
	"time"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
)

// AppointmentRepository is the slice of the appointment storage this use case needs
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// Mailer sends the booking confirmation to the client. A nil mailer
// disables confirmations entirely.
type Mailer interface {
	SendConfirmation(ctx context.Context, appt *domain.Appointment) error
}

// TimeProvider abstracts the current time (for testing)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case
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
