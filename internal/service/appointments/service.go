package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
	appointmentRepo "github.com/palmblack/PalmBlack-BookingService/internal/infra/storage/appointment"
	"github.com/palmblack/PalmBlack-BookingService/internal/service/appointments/models"
)

// Service exposes the admin side of the appointment ledger.
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates the appointments service.
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// List returns active appointments under the given dashboard filter,
// sorted ascending by date and start time.
func (s *Service) List(ctx context.Context, filter string) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, filter=%s", filter)

	domainFilter := domain.AppointmentFilter(filter)
	if filter == "" {
		domainFilter = domain.FilterTodas
	}
	if !domain.ValidFilter(domainFilter) {
		s.logger.Warn("List: invalid filter=%s", filter)
		return nil, fmt.Errorf("%w: %s", ErrInvalidFilter, filter)
	}

	appointments, err := s.appointmentRepo.ListActive(ctx, domainFilter, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments, filter=%s", len(appointments), domainFilter)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel cancels an appointment, freeing its slot for new bookings.
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling appointment id=%s", id)

	err := s.appointmentRepo.Cancel(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		if errors.Is(err, appointmentRepo.ErrAlreadyCancelled) {
			s.logger.Warn("Cancel: appointment id=%s already cancelled", id)
			return ErrAlreadyCancelled
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)
	return nil
}

// Stats computes the dashboard counters from the active appointments.
// Counting in Go keeps one source of truth with the listing semantics.
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	s.logger.Info("Stats: computing dashboard counters")

	now := s.timeProvider.Now()

	appointments, err := s.appointmentRepo.ListActive(ctx, domain.FilterTodas, now)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	stats := domain.AppointmentStats{Total: len(appointments)}
	for _, appt := range appointments {
		if isSameDay(appt.Date, now) {
			stats.Today++
		}
		if !isDateInPast(appt.Date, now) {
			stats.Upcoming++
		}
	}

	s.logger.Info("Stats: today=%d, upcoming=%d, total=%d", stats.Today, stats.Upcoming, stats.Total)
	return models.FromDomainStats(stats), nil
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
