package domain

import (
	"time"

	"github.com/palmblack/PalmBlack-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment.
// The wire values are Spanish, matching the data the shop has always stored.
type AppointmentStatus string

const (
	StatusConfirmada AppointmentStatus = "confirmada"
	StatusCancelada  AppointmentStatus = "cancelada"
)

// Appointment represents a confirmed or cancelled barbershop appointment.
type Appointment struct {
	ID        string
	Date      time.Time        // calendar date only, time-of-day is ignored
	StartTime types.TimeString // slot label, e.g. "09:30"

	// Client contact details
	FirstName string
	LastName  string
	Email     string
	Phone     string

	Status      AppointmentStatus
	CancelledAt *time.Time
	CreatedAt   time.Time
}

// IsActive returns true if the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusConfirmada
}

// IsCancelled returns true if the appointment has been cancelled.
// Cancelled is a terminal state.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelada
}

// CanBeCancelled returns true if the appointment can still be cancelled.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmada
}

// ClientFullName returns the client's display name.
func (a *Appointment) ClientFullName() string {
	return a.FirstName + " " + a.LastName
}

// AppointmentFilter selects which appointments a listing returns.
// Wire values match the admin dashboard tabs of the original shop UI.
type AppointmentFilter string

const (
	FilterTodas    AppointmentFilter = "todas"    // every active appointment
	FilterHoy      AppointmentFilter = "hoy"      // today's calendar date only
	FilterProximas AppointmentFilter = "proximas" // today and later, inclusive
)

// ValidFilter reports whether f is a known listing filter.
func ValidFilter(f AppointmentFilter) bool {
	switch f {
	case FilterTodas, FilterHoy, FilterProximas:
		return true
	}
	return false
}

// AppointmentStats aggregates the dashboard counters.
type AppointmentStats struct {
	Today    int // active appointments on today's date
	Upcoming int // active appointments today or later
	Total    int // all active appointments
}
