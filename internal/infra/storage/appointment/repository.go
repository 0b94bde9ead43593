package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
	"github.com/palmblack/PalmBlack-BookingService/pkg/dbmetrics"
	"github.com/palmblack/PalmBlack-BookingService/pkg/psqlbuilder"
	"github.com/palmblack/PalmBlack-BookingService/pkg/types"
)

const appointmentColumns = "id, appointment_date, start_time, first_name, last_name, email, phone, status, cancelled_at, created_at"

// Repository persists the appointment ledger. Appointments are never
// physically deleted; cancellation only flips their status.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an appointment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create appends a new appointment to the ledger. The caller provides
// the id and status; created_at is assigned by the database.
//
// There is deliberately no uniqueness check on (date, start_time):
// two concurrent creations of the same slot both succeed. See the
// double-booking note in the create_appointment usecase.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"appointment_date",
			"start_time",
			"first_name",
			"last_name",
			"email",
			"phone",
			"status",
		).
		Values(
			appt.ID,
			appt.Date,
			appt.StartTime,
			appt.FirstName,
			appt.LastName,
			appt.Email,
			appt.Phone,
			appt.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// GetByID fetches one appointment by id.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	appt, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// ListActive returns confirmed appointments matching the filter,
// sorted ascending by (date, start time). The caller supplies "today"
// so the repository stays clock-free.
func (r *Repository) ListActive(ctx context.Context, filter domain.AppointmentFilter, today time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns).
		From("appointments").
		Where(squirrel.Eq{"status": domain.StatusConfirmada}).
		OrderBy("appointment_date ASC, start_time ASC")

	todayOnly := dateOnly(today)
	switch filter {
	case domain.FilterHoy:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": todayOnly})
	case domain.FilterProximas:
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": todayOnly})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetBookedTimes returns the start times of confirmed appointments on
// the given date. Cancelled appointments free their slot.
func (r *Repository) GetBookedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time").
		From("appointments").
		Where(squirrel.Eq{
			"appointment_date": dateOnly(date),
			"status":           domain.StatusConfirmada,
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetBookedTimes - scan start_time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// Cancel transitions an appointment to the cancelled state.
// Returns ErrAppointmentNotFound for unknown ids and ErrAlreadyCancelled
// when the appointment was cancelled before.
func (r *Repository) Cancel(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelada).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.StatusConfirmada,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Distinguish an unknown id from a terminal-state appointment
		if _, err := r.GetByID(ctx, id); err == nil {
			return ErrAlreadyCancelled
		}
		return ErrAppointmentNotFound
	}

	return nil
}

// scanAppointment scans a single row into a domain appointment.
func scanAppointment(row *sql.Row) (*domain.Appointment, error) {
	var appt domain.Appointment
	var cancelledAt sql.NullTime
	var createdAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.Date,
		&appt.StartTime,
		&appt.FirstName,
		&appt.LastName,
		&appt.Email,
		&appt.Phone,
		&appt.Status,
		&cancelledAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		appt.CancelledAt = &cancelledAt.Time
	}
	appt.CreatedAt = createdAt.Time

	return &appt, nil
}

// scanAppointments scans query results into a slice of appointments.
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var cancelledAt sql.NullTime
		var createdAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.Date,
			&appt.StartTime,
			&appt.FirstName,
			&appt.LastName,
			&appt.Email,
			&appt.Phone,
			&appt.Status,
			&cancelledAt,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		if cancelledAt.Valid {
			appt.CancelledAt = &cancelledAt.Time
		}
		appt.CreatedAt = createdAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// dateOnly strips the time-of-day so DATE columns compare cleanly.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
