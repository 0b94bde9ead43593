package availability

import (
	"context"
	"fmt"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
	"github.com/palmblack/PalmBlack-BookingService/internal/service/availability/models"
)

// Service manages the weekly availability rules.
type Service struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService creates the availability service.
func NewService(
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetWeek returns the current weekly schedule with the dashboard summary.
func (s *Service) GetWeek(ctx context.Context) (*models.WeekResponse, error) {
	s.logger.Info("GetWeek: fetching weekly schedule")

	week, err := s.availabilityRepo.GetWeek(ctx)
	if err != nil {
		s.logger.Error("GetWeek: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	return s.buildResponse(week)
}

// SaveWeek validates and stores a full weekly schedule. The write runs
// in a serializable transaction so slot listings never see a torn week.
func (s *Service) SaveWeek(ctx context.Context, req *models.UpdateWeekRequest) (*models.WeekResponse, error) {
	s.logger.Info("SaveWeek: saving weekly schedule")

	week := req.ToDomainWeek()

	if err := validateWeek(week); err != nil {
		s.logger.Warn("SaveWeek: validation failed: %v", err)
		return nil, err
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return s.availabilityRepo.SaveWeek(txCtx, week)
	})
	if err != nil {
		s.logger.Error("SaveWeek: repository error: %v", err)
		return nil, fmt.Errorf("%w: SaveWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SaveWeek: weekly schedule saved")
	return s.buildResponse(week)
}

// ResetWeek drops the stored schedule and returns the defaults.
func (s *Service) ResetWeek(ctx context.Context) (*models.WeekResponse, error) {
	s.logger.Info("ResetWeek: restoring default schedule")

	if err := s.availabilityRepo.ResetWeek(ctx); err != nil {
		s.logger.Error("ResetWeek: repository error: %v", err)
		return nil, fmt.Errorf("%w: ResetWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ResetWeek: default schedule restored")
	return s.buildResponse(domain.DefaultWeekSchedule())
}

// buildResponse converts the schedule and computes the summary counters.
func (s *Service) buildResponse(week domain.WeekSchedule) (*models.WeekResponse, error) {
	summary := models.WeekSummary{}

	for _, rule := range week {
		if !rule.IsOpen {
			continue
		}

		summary.OpenDays++
		if rule.HasActiveBreak() {
			summary.DaysWithBreak++
		}

		slots, err := rule.SlotTimes()
		if err != nil {
			s.logger.Error("buildResponse: failed to count slots for %s: %v", rule.Weekday, err)
			return nil, fmt.Errorf("%w: buildResponse - failed to count slots: %v", ErrInternal, err)
		}
		summary.WeeklySlots += len(slots)
	}

	return &models.WeekResponse{
		Week:    models.FromDomainWeek(week),
		Summary: summary,
	}, nil
}
