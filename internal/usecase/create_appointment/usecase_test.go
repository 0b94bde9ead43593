package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
)

type stubAppointmentRepo struct {
	created *domain.Appointment
	err     error
}

func (s *stubAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = appt
	appt.CreatedAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return appt, nil
}

type stubMailer struct {
	sent []string
	err  error
}

func (s *stubMailer) SendConfirmation(_ context.Context, appt *domain.Appointment) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, appt.ID)
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

func validRequest() *Request {
	return &Request{
		Date:      time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		FirstName: "Carlos",
		LastName:  "Pérez García",
		Email:     "carlos@example.com",
		Phone:     "+57 300 123 4567",
	}
}

func newTestUseCase(repo *stubAppointmentRepo, mailer Mailer) *UseCase {
	uc := NewUseCase(repo, mailer, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_CreatesConfirmedAppointment(t *testing.T) {
	repo := &stubAppointmentRepo{}
	mailer := &stubMailer{}
	uc := newTestUseCase(repo, mailer)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmada), resp.Status)
	_, parseErr := uuid.Parse(resp.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, []string{resp.ID}, mailer.sent)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Carlos", repo.created.FirstName)
}

func TestExecute_AllEmptyFieldsCollected(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, nil)

	req := validRequest()
	req.FirstName = ""
	req.LastName = "   "
	req.Email = ""
	req.Phone = ""

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"El nombre es obligatorio",
		"Los apellidos son obligatorios",
		"El correo electrónico es obligatorio",
		"El teléfono es obligatorio",
	}, verr.Messages)
}

func TestExecute_BadEmailOnly(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, nil)

	req := validRequest()
	req.Email = "not-an-email"

	_, err := uc.Execute(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"El correo electrónico no es válido"}, verr.Messages)
}

func TestExecute_BadPhoneCharset(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, nil)

	req := validRequest()
	req.Phone = "300abc"

	_, err := uc.Execute(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"El teléfono contiene caracteres no válidos"}, verr.Messages)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, nil)

	req := validRequest()
	req.Date = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_MailerFailureDoesNotLoseBooking(t *testing.T) {
	repo := &stubAppointmentRepo{}
	mailer := &stubMailer{err: errors.New("smtp down")}
	uc := newTestUseCase(repo, mailer)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	repo := &stubAppointmentRepo{err: errors.New("db down")}
	uc := newTestUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_NoAvailabilityCheckOnCreate(t *testing.T) {
	// Two identical requests both succeed. The ledger accepts the
	// second booking for the same slot; only the slot listing hides it.
	repo := &stubAppointmentRepo{}
	uc := newTestUseCase(repo, nil)

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.StartTime, second.StartTime)
}
