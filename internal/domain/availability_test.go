package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmblack/PalmBlack-BookingService/pkg/types"
)

func TestSlotTimes(t *testing.T) {
	tests := []struct {
		name string
		rule AvailabilityRule
		want []types.TimeString
	}{
		{
			name: "weekday with lunch break",
			rule: AvailabilityRule{
				Weekday:   time.Monday,
				IsOpen:    true,
				StartTime: "09:00",
				EndTime:   "18:00",
				Break:     BreakWindow{IsActive: true, StartTime: "12:00", EndTime: "13:00"},
			},
			want: []types.TimeString{
				"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
				"13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
				"16:00", "16:30", "17:00", "17:30",
			},
		},
		{
			name: "closed day yields nothing",
			rule: AvailabilityRule{
				Weekday:   time.Sunday,
				IsOpen:    false,
				StartTime: "10:00",
				EndTime:   "16:00",
			},
			want: []types.TimeString{},
		},
		{
			name: "inactive break does not exclude slots",
			rule: AvailabilityRule{
				Weekday:   time.Tuesday,
				IsOpen:    true,
				StartTime: "10:00",
				EndTime:   "12:00",
				Break:     BreakWindow{IsActive: false, StartTime: "10:30", EndTime: "11:00"},
			},
			want: []types.TimeString{"10:00", "10:30", "11:00", "11:30"},
		},
		{
			name: "break spanning the whole day",
			rule: AvailabilityRule{
				Weekday:   time.Wednesday,
				IsOpen:    true,
				StartTime: "09:00",
				EndTime:   "11:00",
				Break:     BreakWindow{IsActive: true, StartTime: "09:00", EndTime: "11:00"},
			},
			want: []types.TimeString{},
		},
		{
			name: "start equal to end yields nothing",
			rule: AvailabilityRule{
				Weekday:   time.Thursday,
				IsOpen:    true,
				StartTime: "09:00",
				EndTime:   "09:00",
			},
			want: []types.TimeString{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rule.SlotTimes()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultWeekSchedule(t *testing.T) {
	week := DefaultWeekSchedule()

	for d := time.Monday; d <= time.Friday; d++ {
		assert.True(t, week[d].IsOpen)
		assert.Equal(t, types.TimeString("09:00"), week[d].StartTime)
		assert.Equal(t, types.TimeString("18:00"), week[d].EndTime)
		assert.True(t, week[d].HasActiveBreak())
	}

	assert.True(t, week[time.Saturday].IsOpen)
	assert.Equal(t, types.TimeString("08:00"), week[time.Saturday].StartTime)
	assert.Equal(t, types.TimeString("17:00"), week[time.Saturday].EndTime)

	// Sunday keeps its times even though it is closed
	assert.False(t, week[time.Sunday].IsOpen)
	assert.Equal(t, types.TimeString("10:00"), week[time.Sunday].StartTime)

	monday, err := week[time.Monday].SlotTimes()
	require.NoError(t, err)
	assert.Len(t, monday, 16)

	saturday, err := week[time.Saturday].SlotTimes()
	require.NoError(t, err)
	assert.Len(t, saturday, 16)

	sunday, err := week[time.Sunday].SlotTimes()
	require.NoError(t, err)
	assert.Empty(t, sunday)
}

func TestInBreak(t *testing.T) {
	rule := AvailabilityRule{
		IsOpen:    true,
		StartTime: "09:00",
		EndTime:   "18:00",
		Break:     BreakWindow{IsActive: true, StartTime: "12:00", EndTime: "13:00"},
	}

	assert.False(t, rule.InBreak("11:30"))
	assert.True(t, rule.InBreak("12:00"))
	assert.True(t, rule.InBreak("12:30"))
	assert.False(t, rule.InBreak("13:00"))
}

func TestRuleFor(t *testing.T) {
	week := DefaultWeekSchedule()

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Monday, week.RuleFor(monday).Weekday)

	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	assert.False(t, week.RuleFor(sunday).IsOpen)
}
