package create_appointment

import (
	"time"

	"github.com/palmblack/PalmBlack-BookingService/pkg/types"
)

// Request carries the booking form fields.
type Request struct {
	Date      time.Time        // appointment date, time-of-day ignored
	StartTime types.TimeString // slot start, e.g. "10:00"
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Response is the created appointment.
type Response struct {
	ID        string
	Date      time.Time
	StartTime types.TimeString
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Status    string
	CreatedAt time.Time
}
