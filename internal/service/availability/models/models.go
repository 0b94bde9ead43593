package models

import (
	"time"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
	"github.com/palmblack/PalmBlack-BookingService/pkg/types"
)

// BreakDTO is the optional mid-day pause of one weekday.
type BreakDTO struct {
	IsActive  bool   `json:"isActive"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DayScheduleDTO is the working-hours configuration of one weekday.
type DayScheduleDTO struct {
	IsOpen    bool     `json:"isOpen"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Break     BreakDTO `json:"break"`
}

// WeekDTO keys the seven day schedules the way the shop has always
// stored them, by Spanish day name.
type WeekDTO struct {
	Lunes     DayScheduleDTO `json:"lunes"`
	Martes    DayScheduleDTO `json:"martes"`
	Miercoles DayScheduleDTO `json:"miercoles"`
	Jueves    DayScheduleDTO `json:"jueves"`
	Viernes   DayScheduleDTO `json:"viernes"`
	Sabado    DayScheduleDTO `json:"sabado"`
	Domingo   DayScheduleDTO `json:"domingo"`
}

// WeekSummary carries the admin dashboard counters.
type WeekSummary struct {
	OpenDays      int `json:"openDays"`      // days with IsOpen
	WeeklySlots   int `json:"weeklySlots"`   // bookable slots over the whole week
	DaysWithBreak int `json:"daysWithBreak"` // open days with an active break
}

// WeekResponse is the full availability payload.
type WeekResponse struct {
	Week    WeekDTO     `json:"week"`
	Summary WeekSummary `json:"summary"`
}

// UpdateWeekRequest replaces the whole weekly schedule at once.
type UpdateWeekRequest struct {
	Week WeekDTO `json:"week"`
}

// ToDomainWeek converts the DTO into the domain schedule.
func (r *UpdateWeekRequest) ToDomainWeek() domain.WeekSchedule {
	var week domain.WeekSchedule
	for weekday, dto := range r.Week.days() {
		week[weekday] = dto.toDomainRule(time.Weekday(weekday))
	}
	return week
}

// FromDomainWeek converts the domain schedule into the DTO.
func FromDomainWeek(week domain.WeekSchedule) WeekDTO {
	return WeekDTO{
		Domingo:   fromDomainRule(week[time.Sunday]),
		Lunes:     fromDomainRule(week[time.Monday]),
		Martes:    fromDomainRule(week[time.Tuesday]),
		Miercoles: fromDomainRule(week[time.Wednesday]),
		Jueves:    fromDomainRule(week[time.Thursday]),
		Viernes:   fromDomainRule(week[time.Friday]),
		Sabado:    fromDomainRule(week[time.Saturday]),
	}
}

// days returns the schedules indexed by time.Weekday (Sunday = 0).
func (w *WeekDTO) days() [7]DayScheduleDTO {
	return [7]DayScheduleDTO{
		time.Sunday:    w.Domingo,
		time.Monday:    w.Lunes,
		time.Tuesday:   w.Martes,
		time.Wednesday: w.Miercoles,
		time.Thursday:  w.Jueves,
		time.Friday:    w.Viernes,
		time.Saturday:  w.Sabado,
	}
}

func (d DayScheduleDTO) toDomainRule(weekday time.Weekday) domain.AvailabilityRule {
	return domain.AvailabilityRule{
		Weekday:   weekday,
		IsOpen:    d.IsOpen,
		StartTime: types.TimeString(d.StartTime),
		EndTime:   types.TimeString(d.EndTime),
		Break: domain.BreakWindow{
			IsActive:  d.Break.IsActive,
			StartTime: types.TimeString(d.Break.StartTime),
			EndTime:   types.TimeString(d.Break.EndTime),
		},
	}
}

func fromDomainRule(rule domain.AvailabilityRule) DayScheduleDTO {
	return DayScheduleDTO{
		IsOpen:    rule.IsOpen,
		StartTime: rule.StartTime.String(),
		EndTime:   rule.EndTime.String(),
		Break: BreakDTO{
			IsActive:  rule.Break.IsActive,
			StartTime: rule.Break.StartTime.String(),
			EndTime:   rule.Break.EndTime.String(),
		},
	}
}
