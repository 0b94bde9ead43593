package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
	"github.com/palmblack/PalmBlack-BookingService/pkg/dbmetrics"
	"github.com/palmblack/PalmBlack-BookingService/pkg/psqlbuilder"
)

const availabilityColumns = "weekday, is_open, start_time, end_time, break_active, break_start, break_end"

// Repository persists the weekly availability rules, one row per weekday.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an availability repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeek loads the stored weekly schedule. Weekdays without a stored
// row fall back to the built-in defaults, so a fresh database behaves
// as if the default schedule had been saved.
func (r *Repository) GetWeek(ctx context.Context) (domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	week := domain.DefaultWeekSchedule()

	query, args, err := psqlbuilder.Select(availabilityColumns).
		From("weekly_availability").
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return week, fmt.Errorf("%w: GetWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return week, fmt.Errorf("%w: GetWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rule domain.AvailabilityRule
		var weekday int

		err := rows.Scan(
			&weekday,
			&rule.IsOpen,
			&rule.StartTime,
			&rule.EndTime,
			&rule.Break.IsActive,
			&rule.Break.StartTime,
			&rule.Break.EndTime,
		)
		if err != nil {
			return week, fmt.Errorf("%w: GetWeek - scan rule: %v", ErrScanRow, err)
		}

		if weekday < 0 || weekday > 6 {
			return week, fmt.Errorf("%w: GetWeek - weekday %d", ErrInvalidWeekday, weekday)
		}

		rule.Weekday = time.Weekday(weekday)
		week[weekday] = rule
	}

	if err := rows.Err(); err != nil {
		return week, fmt.Errorf("%w: GetWeek - rows error: %v", ErrScanRow, err)
	}

	return week, nil
}

// SaveWeek replaces the stored schedule with the given one. The whole
// week is rewritten in one pass; the caller is expected to run it
// inside a serializable transaction so readers never observe a
// half-written week.
func (r *Repository) SaveWeek(ctx context.Context, week domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("weekly_availability").ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveWeek - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: SaveWeek - execute delete: %v", ErrExecQuery, err)
	}

	insertBuilder := psqlbuilder.Insert("weekly_availability").
		Columns(
			"weekday",
			"is_open",
			"start_time",
			"end_time",
			"break_active",
			"break_start",
			"break_end",
		)

	for weekday, rule := range week {
		insertBuilder = insertBuilder.Values(
			weekday,
			rule.IsOpen,
			rule.StartTime,
			rule.EndTime,
			rule.Break.IsActive,
			rule.Break.StartTime,
			rule.Break.EndTime,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveWeek - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: SaveWeek - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ResetWeek drops all stored rules so GetWeek reports the defaults again.
func (r *Repository) ResetWeek(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("weekly_availability").ToSql()
	if err != nil {
		return fmt.Errorf("%w: ResetWeek - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ResetWeek - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
