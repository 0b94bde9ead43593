package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
	"github.com/palmblack/PalmBlack-BookingService/pkg/types"
)

type stubAppointmentRepo struct {
	booked []types.TimeString
	err    error
}

func (s *stubAppointmentRepo) GetBookedTimes(_ context.Context, _ time.Time) ([]types.TimeString, error) {
	return s.booked, s.err
}

type stubAvailabilityRepo struct {
	week domain.WeekSchedule
	err  error
}

func (s *stubAvailabilityRepo) GetWeek(_ context.Context) (domain.WeekSchedule, error) {
	return s.week, s.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(appts *stubAppointmentRepo, avail *stubAvailabilityRepo, now time.Time) *UseCase {
	uc := NewUseCase(appts, avail, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_BookedSlotsAreExcluded(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC) // Monday
	future := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubAppointmentRepo{booked: []types.TimeString{"09:00", "15:30"}},
		&stubAvailabilityRepo{week: domain.DefaultWeekSchedule()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: future})
	require.NoError(t, err)

	assert.True(t, resp.IsOpen)
	assert.Len(t, resp.Slots, 14)
	assert.NotContains(t, resp.Slots, types.TimeString("09:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("15:30"))
	assert.NotContains(t, resp.Slots, types.TimeString("12:00"))
	assert.Contains(t, resp.Slots, types.TimeString("09:30"))
}

func TestExecute_ClosedDay(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubAppointmentRepo{},
		&stubAvailabilityRepo{week: domain.DefaultWeekSchedule()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: sunday})
	require.NoError(t, err)

	assert.False(t, resp.IsOpen)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDate(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubAppointmentRepo{},
		&stubAvailabilityRepo{week: domain.DefaultWeekSchedule()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: yesterday})
	require.NoError(t, err)

	assert.False(t, resp.IsOpen)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TodayDropsPassedSlots(t *testing.T) {
	// Monday 13:10 local time, lunch break already over
	now := time.Date(2026, 3, 2, 13, 10, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubAppointmentRepo{},
		&stubAvailabilityRepo{week: domain.DefaultWeekSchedule()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: now})
	require.NoError(t, err)

	assert.True(t, resp.IsOpen)
	assert.Equal(t, []types.TimeString{
		"13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
	}, resp.Slots)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubAvailabilityRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	future := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubAppointmentRepo{err: errors.New("db down")},
		&stubAvailabilityRepo{week: domain.DefaultWeekSchedule()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{Date: future})
	assert.ErrorIs(t, err, ErrInternal)
}
