package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
	appointmentRepo "github.com/palmblack/PalmBlack-BookingService/internal/infra/storage/appointment"
)

type stubRepo struct {
	appointments []*domain.Appointment
	listErr      error
	cancelErr    error
	cancelled    []string
	lastFilter   domain.AppointmentFilter
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	for _, appt := range s.appointments {
		if appt.ID == id {
			return appt, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (s *stubRepo) ListActive(_ context.Context, filter domain.AppointmentFilter, today time.Time) ([]*domain.Appointment, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	s.lastFilter = filter

	result := make([]*domain.Appointment, 0)
	for _, appt := range s.appointments {
		if !appt.IsActive() {
			continue
		}
		switch filter {
		case domain.FilterHoy:
			if !isSameDay(appt.Date, today) {
				continue
			}
		case domain.FilterProximas:
			if isDateInPast(appt.Date, today) {
				continue
			}
		}
		result = append(result, appt)
	}
	return result, nil
}

func (s *stubRepo) Cancel(_ context.Context, id string) error {
	if s.cancelErr != nil {
		return s.cancelErr
	}
	s.cancelled = append(s.cancelled, id)
	return nil
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

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) // Monday

func appt(id string, date time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:        id,
		Date:      date,
		StartTime: "10:00",
		FirstName: "Ana",
		LastName:  "López",
		Email:     "ana@example.com",
		Phone:     "300 111 2233",
		Status:    status,
	}
}

func newTestService(repo *stubRepo) *Service {
	s := NewService(repo, nopLogger{})
	s.timeProvider = &fixedTimeProvider{now: testNow}
	return s
}

func TestList_FilterValidation(t *testing.T) {
	s := newTestService(&stubRepo{})

	_, err := s.List(context.Background(), "ayer")
	assert.ErrorIs(t, err, ErrInvalidFilter)

	// Empty filter defaults to todas
	_, err = s.List(context.Background(), "")
	assert.NoError(t, err)
}

func TestList_ExcludesCancelled(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	tomorrow := testNow.AddDate(0, 0, 1)

	repo := &stubRepo{appointments: []*domain.Appointment{
		appt("a1", yesterday, domain.StatusConfirmada),
		appt("a2", testNow, domain.StatusCancelada),
		appt("a3", tomorrow, domain.StatusConfirmada),
	}}
	s := newTestService(repo)

	resp, err := s.List(context.Background(), "todas")
	require.NoError(t, err)

	ids := make([]string, 0)
	for _, a := range resp.Appointments {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"a1", "a3"}, ids)
}

func TestList_ProximasExcludesPast(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	tomorrow := testNow.AddDate(0, 0, 1)

	repo := &stubRepo{appointments: []*domain.Appointment{
		appt("a1", yesterday, domain.StatusConfirmada),
		appt("a2", testNow, domain.StatusConfirmada),
		appt("a3", tomorrow, domain.StatusConfirmada),
	}}
	s := newTestService(repo)

	resp, err := s.List(context.Background(), "proximas")
	require.NoError(t, err)

	assert.Len(t, resp.Appointments, 2)
	assert.Equal(t, "a2", resp.Appointments[0].ID)
	assert.Equal(t, "a3", resp.Appointments[1].ID)
}

func TestCancel(t *testing.T) {
	repo := &stubRepo{}
	s := newTestService(repo)

	require.NoError(t, s.Cancel(context.Background(), "a1"))
	assert.Equal(t, []string{"a1"}, repo.cancelled)
}

func TestCancel_NotFound(t *testing.T) {
	repo := &stubRepo{cancelErr: appointmentRepo.ErrAppointmentNotFound}
	s := newTestService(repo)

	assert.ErrorIs(t, s.Cancel(context.Background(), "missing"), ErrAppointmentNotFound)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := &stubRepo{cancelErr: appointmentRepo.ErrAlreadyCancelled}
	s := newTestService(repo)

	assert.ErrorIs(t, s.Cancel(context.Background(), "a1"), ErrAlreadyCancelled)
}

func TestCancel_RepositoryFailure(t *testing.T) {
	repo := &stubRepo{cancelErr: errors.New("db down")}
	s := newTestService(repo)

	assert.ErrorIs(t, s.Cancel(context.Background(), "a1"), ErrInternal)
}

func TestStats(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	tomorrow := testNow.AddDate(0, 0, 1)

	repo := &stubRepo{appointments: []*domain.Appointment{
		appt("a1", yesterday, domain.StatusConfirmada),
		appt("a2", testNow, domain.StatusConfirmada),
		appt("a3", tomorrow, domain.StatusConfirmada),
		appt("a4", tomorrow, domain.StatusCancelada),
	}}
	s := newTestService(repo)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Today)
	assert.Equal(t, 2, stats.Upcoming)
	assert.Equal(t, 3, stats.Total)
}
