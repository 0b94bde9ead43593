package get_available_slots

import (
	"time"

	"github.com/palmblack/PalmBlack-BookingService/pkg/types"
)

// filterBooked removes slots whose start time is already taken by a
// confirmed appointment. Cancelled appointments do not block a slot.
func filterBooked(slots []types.TimeString, booked []types.TimeString) []types.TimeString {
	taken := make(map[types.TimeString]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	free := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot]; !ok {
			free = append(free, slot)
		}
	}

	return free
}

// filterPast drops slots that already started, used only when the
// requested date is today.
func filterPast(slots []types.TimeString, now time.Time) []types.TimeString {
	cutoff := types.NewTimeString(now)

	future := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsBefore(cutoff) {
			future = append(future, slot)
		}
	}

	return future
}

// isSameDay reports whether two timestamps fall on the same calendar day
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast reports whether date is before today
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
