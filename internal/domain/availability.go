package domain

import (
	"time"

	"github.com/palmblack/PalmBlack-BookingService/pkg/types"
)

// BreakWindow is an optional pause inside a working day. While active,
// no slots are offered in [StartTime, EndTime).
type BreakWindow struct {
	IsActive  bool
	StartTime types.TimeString
	EndTime   types.TimeString
}

// AvailabilityRule is the working-hours configuration for one weekday.
// Times are wall-clock labels local to the shop.
//
// Invariants, enforced at the write boundary:
//   - if IsOpen, StartTime < EndTime
//   - if Break.IsActive, StartTime <= Break.StartTime < Break.EndTime <= EndTime
//
// A closed day keeps its times so reopening the day restores them.
type AvailabilityRule struct {
	Weekday   time.Weekday
	IsOpen    bool
	StartTime types.TimeString
	EndTime   types.TimeString
	Break     BreakWindow
}

// HasActiveBreak returns true if the rule excludes a break window.
func (r *AvailabilityRule) HasActiveBreak() bool {
	return r.Break.IsActive
}

// InBreak reports whether the slot label t falls inside the active
// break window [Break.StartTime, Break.EndTime).
func (r *AvailabilityRule) InBreak(t types.TimeString) bool {
	if !r.Break.IsActive {
		return false
	}
	return !t.IsBefore(r.Break.StartTime) && t.IsBefore(r.Break.EndTime)
}

// SlotTimes lists every slot start the rule offers. Slots begin at the
// opening time and advance in SlotStepMinutes steps while the start
// stays strictly before closing time; starts inside an active break
// are skipped. A closed day offers nothing.
func (r AvailabilityRule) SlotTimes() ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)

	if !r.IsOpen {
		return slots, nil
	}

	current := r.StartTime
	for current.IsBefore(r.EndTime) {
		if !r.InBreak(current) {
			slots = append(slots, current)
		}

		next, err := current.AddMinutes(SlotStepMinutes)
		if err != nil {
			return nil, err
		}
		current = next
	}

	return slots, nil
}

// WeekSchedule holds one rule per weekday, indexed by time.Weekday
// (Sunday = 0, matching the standard library).
type WeekSchedule [7]AvailabilityRule

// RuleFor returns the rule for the weekday of the given date.
func (w WeekSchedule) RuleFor(date time.Time) AvailabilityRule {
	return w[date.Weekday()]
}

// DefaultWeekSchedule returns the built-in schedule used until the
// administrator saves one: Monday-Friday 09:00-18:00 with a 12:00-13:00
// break, Saturday 08:00-17:00 with the same break, Sunday closed (its
// times are kept but inert).
func DefaultWeekSchedule() WeekSchedule {
	weekdayBreak := BreakWindow{IsActive: true, StartTime: "12:00", EndTime: "13:00"}

	var week WeekSchedule
	for d := time.Monday; d <= time.Friday; d++ {
		week[d] = AvailabilityRule{
			Weekday:   d,
			IsOpen:    true,
			StartTime: "09:00",
			EndTime:   "18:00",
			Break:     weekdayBreak,
		}
	}

	week[time.Saturday] = AvailabilityRule{
		Weekday:   time.Saturday,
		IsOpen:    true,
		StartTime: "08:00",
		EndTime:   "17:00",
		Break:     weekdayBreak,
	}

	week[time.Sunday] = AvailabilityRule{
		Weekday:   time.Sunday,
		IsOpen:    false,
		StartTime: "10:00",
		EndTime:   "16:00",
		Break:     BreakWindow{IsActive: false, StartTime: "12:00", EndTime: "13:00"},
	}

	return week
}
