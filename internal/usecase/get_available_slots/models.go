package get_available_slots

import (
	"time"

	"github.com/palmblack/PalmBlack-BookingService/pkg/types"
)

// Request asks for the bookable slots on one date.
type Request struct {
	Date time.Time // date to generate slots for, time-of-day ignored
}

// Response lists the slots still free on the requested date.
type Response struct {
	Date   time.Time          // the requested date
	IsOpen bool               // false when the shop is closed that weekday
	Slots  []types.TimeString // free slot start times, ascending
}
