package availability

import (
	"context"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
)

// AvailabilityRepository is the slice of the availability storage this service needs
type AvailabilityRepository interface {
	GetWeek(ctx context.Context) (domain.WeekSchedule, error)
	SaveWeek(ctx context.Context, week domain.WeekSchedule) error
	ResetWeek(ctx context.Context) error
}

// TransactionManager runs repository calls inside a transaction
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
