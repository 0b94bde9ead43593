package models

import (
	"time"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
	"github.com/palmblack/PalmBlack-BookingService/pkg/ptr"
)

// AppointmentResponse is the appointment DTO served to the dashboard.
type AppointmentResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`      // "2026-03-09"
	StartTime string `json:"startTime"` // "10:00"
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse is the list wrapper.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// StatsResponse carries the dashboard counters.
type StatsResponse struct {
	Today    int `json:"today"`
	Upcoming int `json:"upcoming"`
	Total    int `json:"total"`
}

// FromDomainAppointment converts a domain model into the DTO.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:        a.ID,
		Date:      a.Date.Format(domain.DateFormat),
		StartTime: a.StartTime.String(),
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Phone:     a.Phone,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}

	if a.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(a.CancelledAt.Format(time.RFC3339))
	}

	return resp
}

// FromDomainAppointmentList converts a slice of domain models into the DTO.
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}

// FromDomainStats converts domain counters into the DTO.
func FromDomainStats(s domain.AppointmentStats) *StatsResponse {
	return &StatsResponse{
		Today:    s.Today,
		Upcoming: s.Upcoming,
		Total:    s.Total,
	}
}
