package get_available_slots

import (
	"context"
	"fmt"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
	"github.com/palmblack/PalmBlack-BookingService/pkg/types"
)

// UseCase computes the free slots for one date from the weekly
// availability rules and the confirmed appointments on that date.
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case instance
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute runs the use case.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// Past days offer nothing, the weekday rule does not matter
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, IsOpen: false, Slots: []types.TimeString{}}, nil
	}

	week, err := uc.availabilityRepo.GetWeek(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get week schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get week schedule: %v", ErrInternal, err)
	}

	rule := week.RuleFor(req.Date)
	if !rule.IsOpen {
		uc.logger.Info("GetAvailableSlots: closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, IsOpen: false, Slots: []types.TimeString{}}, nil
	}

	slots, err := rule.SlotTimes()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	booked, err := uc.appointmentRepo.GetBookedTimes(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	free := filterBooked(slots, booked)

	if isSameDay(req.Date, now) {
		free = filterPast(free, now)
	}

	uc.logger.Info("GetAvailableSlots: %d free slots on %s", len(free), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, IsOpen: true, Slots: free}, nil
}
