package get_available_slots

import (
	"context"
	"time"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
	"github.com/palmblack/PalmBlack-BookingService/pkg/types"
)

// AppointmentRepository is the slice of the appointment storage this use case needs
type AppointmentRepository interface {
	// GetBookedTimes returns start times of confirmed appointments on the date
	GetBookedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// AvailabilityRepository is the slice of the availability storage this use case needs
type AvailabilityRepository interface {
	// GetWeek returns the current weekly schedule, defaults included
	GetWeek(ctx context.Context) (domain.WeekSchedule, error)
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
