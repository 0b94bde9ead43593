package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
	"github.com/palmblack/PalmBlack-BookingService/internal/service/availability/models"
)

type stubRepo struct {
	week     domain.WeekSchedule
	getErr   error
	saveErr  error
	resetErr error
	saved    *domain.WeekSchedule
	resets   int
}

func (s *stubRepo) GetWeek(_ context.Context) (domain.WeekSchedule, error) {
	return s.week, s.getErr
}

func (s *stubRepo) SaveWeek(_ context.Context, week domain.WeekSchedule) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = &week
	return nil
}

func (s *stubRepo) ResetWeek(_ context.Context) error {
	if s.resetErr != nil {
		return s.resetErr
	}
	s.resets++
	return nil
}

type passthroughTxManager struct {
	serializableCalls int
}

func (m *passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.serializableCalls++
	return fn(ctx)
}

func (m *passthroughTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func defaultWeekRequest() *models.UpdateWeekRequest {
	return &models.UpdateWeekRequest{
		Week: models.FromDomainWeek(domain.DefaultWeekSchedule()),
	}
}

func TestGetWeek_Summary(t *testing.T) {
	repo := &stubRepo{week: domain.DefaultWeekSchedule()}
	s := NewService(repo, &passthroughTxManager{}, nopLogger{})

	resp, err := s.GetWeek(context.Background())
	require.NoError(t, err)

	// Mon-Sat open with a break, 16 slots each
	assert.Equal(t, 6, resp.Summary.OpenDays)
	assert.Equal(t, 96, resp.Summary.WeeklySlots)
	assert.Equal(t, 6, resp.Summary.DaysWithBreak)
	assert.True(t, resp.Week.Lunes.IsOpen)
	assert.False(t, resp.Week.Domingo.IsOpen)
}

func TestSaveWeek_RunsSerializable(t *testing.T) {
	repo := &stubRepo{}
	tx := &passthroughTxManager{}
	s := NewService(repo, tx, nopLogger{})

	resp, err := s.SaveWeek(context.Background(), defaultWeekRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, tx.serializableCalls)
	require.NotNil(t, repo.saved)
	assert.Equal(t, 6, resp.Summary.OpenDays)
}

func TestSaveWeek_CollectsAllViolations(t *testing.T) {
	s := NewService(&stubRepo{}, &passthroughTxManager{}, nopLogger{})

	req := defaultWeekRequest()
	// Opening after closing
	req.Week.Lunes.StartTime = "19:00"
	// Break outside working hours
	req.Week.Martes.Break.EndTime = "19:00"
	// Malformed time
	req.Week.Sabado.EndTime = "25:99"

	_, err := s.SaveWeek(context.Background(), req)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Messages, 3)
	assert.Contains(t, verr.Messages[0], "Lunes")
	assert.Contains(t, verr.Messages[1], "Martes")
	assert.Contains(t, verr.Messages[2], "Sábado")
}

func TestSaveWeek_ClosedDayNotValidatedForOrdering(t *testing.T) {
	repo := &stubRepo{}
	s := NewService(repo, &passthroughTxManager{}, nopLogger{})

	req := defaultWeekRequest()
	// Closed day with reversed times is fine, the times stay inert
	req.Week.Domingo.StartTime = "16:00"
	req.Week.Domingo.EndTime = "10:00"

	_, err := s.SaveWeek(context.Background(), req)
	assert.NoError(t, err)
}

func TestResetWeek(t *testing.T) {
	repo := &stubRepo{}
	s := NewService(repo, &passthroughTxManager{}, nopLogger{})

	resp, err := s.ResetWeek(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.resets)
	assert.Equal(t, "09:00", resp.Week.Lunes.StartTime)
	assert.Equal(t, "08:00", resp.Week.Sabado.StartTime)
}

func TestGetWeek_RepositoryFailure(t *testing.T) {
	repo := &stubRepo{getErr: errors.New("db down")}
	s := NewService(repo, &passthroughTxManager{}, nopLogger{})

	_, err := s.GetWeek(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
