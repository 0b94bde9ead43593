package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/palmblack/PalmBlack-BookingService/pkg/types"
)

func TestFilterBooked(t *testing.T) {
	slots := []types.TimeString{"09:00", "09:30", "10:00"}

	free := filterBooked(slots, []types.TimeString{"09:30"})
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, free)

	free = filterBooked(slots, nil)
	assert.Equal(t, slots, free)

	free = filterBooked(slots, slots)
	assert.Empty(t, free)
}

func TestFilterPast(t *testing.T) {
	slots := []types.TimeString{"09:00", "11:00", "15:00"}
	now := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)

	// 11:00 itself is kept, only strictly earlier slots drop
	assert.Equal(t, []types.TimeString{"11:00", "15:00"}, filterPast(slots, now))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC)

	assert.True(t, isDateInPast(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, isDateInPast(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, isDateInPast(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), now))
}
