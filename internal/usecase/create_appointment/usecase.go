package create_appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
)

// UseCase creates a new appointment in the ledger.
//
// Note that slot availability is NOT re-checked here. Two clients who
// both saw the slot as free and submit at the same time will both get
// a confirmed appointment. The available-slots listing hides the slot
// afterwards, but the ledger keeps both rows.
type UseCase struct {
	appointmentRepo AppointmentRepository
	mailer          Mailer
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case instance. mailer may be nil when
// confirmations are disabled.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	mailer Mailer,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		mailer:          mailer,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the use case.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, time=%s, email=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.Email)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	appt := &domain.Appointment{
		ID:        uuid.New().String(),
		Date:      dateOnly(req.Date),
		StartTime: req.StartTime,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Status:    domain.StatusConfirmada,
	}

	created, err := uc.appointmentRepo.Create(ctx, appt)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s", created.ID)

	// Confirmation is best effort, a broken SMTP server must not lose
	// the booking itself
	if uc.mailer != nil {
		if err := uc.mailer.SendConfirmation(ctx, created); err != nil {
			uc.logger.Error("CreateAppointment: failed to send confirmation for id=%s: %v", created.ID, err)
		}
	}

	return &Response{
		ID:        created.ID,
		Date:      created.Date,
		StartTime: created.StartTime,
		FirstName: created.FirstName,
		LastName:  created.LastName,
		Email:     created.Email,
		Phone:     created.Phone,
		Status:    string(created.Status),
		CreatedAt: created.CreatedAt,
	}, nil
}
