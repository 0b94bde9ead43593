package reset_availability

import (
	"context"

	"github.com/palmblack/PalmBlack-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	ResetWeek(ctx context.Context) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
