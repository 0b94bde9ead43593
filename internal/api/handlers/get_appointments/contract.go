package get_appointments

import (
	"context"

	"github.com/palmblack/PalmBlack-BookingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	List(ctx context.Context, filter string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
