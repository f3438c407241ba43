package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/ShiftWise/shiftwise_app/internal/apperrors"
	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	portsrepo "github.com/ShiftWise/shiftwise_app/internal/core/ports/repositories"
	"github.com/ShiftWise/shiftwise_app/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PgxScheduleRepository struct {
	BaseRepository
}

// newPgxScheduleRepository creates a new repository for schedule documents.
func newPgxScheduleRepository(db database.Queryer) portsrepo.ScheduleRepositoryFacade {
	return &PgxScheduleRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure PgxScheduleRepository implements portsrepo.ScheduleRepositoryFacade
var _ portsrepo.ScheduleRepositoryFacade = (*PgxScheduleRepository)(nil)

var FULL_SCHEDULE_SELECT_QUERY = `
SELECT
	s.schedule_id, s.store_id, s.name, s.week_start_date, s.week_end_date,
	s.status, s.is_template, s.schema_version, s.days, s.uploaded_employees,
	s.version, s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
FROM schedules s
`

// scanSchedule reads one row into a domain aggregate, unmarshalling the JSONB
// document columns.
func scanSchedule(row pgx.Row) (*domain.Schedule, error) {
	var s domain.Schedule
	var daysJSON, employeesJSON []byte
	err := row.Scan(
		&s.ScheduleID,
		&s.StoreID,
		&s.Name,
		&s.WeekStartDate,
		&s.WeekEndDate,
		&s.Status,
		&s.IsTemplate,
		&s.SchemaVersion,
		&daysJSON,
		&employeesJSON,
		&s.Version,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(daysJSON, &s.Days); err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode days document for schedule "+s.ScheduleID, err)
	}
	if len(employeesJSON) > 0 {
		if err := json.Unmarshal(employeesJSON, &s.UploadedEmployees); err != nil {
			return nil, apperrors.NewAppError(500, "failed to decode uploaded employees for schedule "+s.ScheduleID, err)
		}
	}
	return &s, nil
}

func (r *PgxScheduleRepository) FindScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	query := FULL_SCHEDULE_SELECT_QUERY + `WHERE s.schedule_id = $1;`
	sched, err := scanSchedule(r.DB.QueryRow(ctx, query, scheduleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.NewAppError(500, "failed to find schedule "+scheduleID, err)
	}
	return sched, nil
}

func (r *PgxScheduleRepository) ListSchedules(ctx context.Context, storeID string, filter portsrepo.ScheduleFilter) ([]domain.Schedule, error) {
	query := FULL_SCHEDULE_SELECT_QUERY + `WHERE s.store_id = $1`
	args := []any{storeID}

	if filter.IsTemplate != nil {
		args = append(args, *filter.IsTemplate)
		query += ` AND s.is_template = $` + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += ` AND s.status = $` + strconv.Itoa(len(args))
	}
	if filter.WeekOf != nil {
		args = append(args, *filter.WeekOf)
		idx := strconv.Itoa(len(args))
		query += ` AND s.week_start_date <= $` + idx + ` AND s.week_end_date >= $` + idx
	}
	query += ` ORDER BY s.week_start_date DESC, s.created_at DESC;`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query schedules for store "+storeID, err)
	}
	defer rows.Close()

	schedules := []domain.Schedule{}
	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan schedule row", err)
		}
		schedules = append(schedules, *sched)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating schedule rows", err)
	}
	return schedules, nil
}

func (r *PgxScheduleRepository) SaveSchedule(ctx context.Context, schedule domain.Schedule) error {
	daysJSON, employeesJSON, err := marshalScheduleDocs(schedule)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO schedules (
			schedule_id, store_id, name, week_start_date, week_end_date,
			status, is_template, schema_version, days, uploaded_employees,
			version, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = r.DB.Exec(ctx, query,
		schedule.ScheduleID,
		schedule.StoreID,
		schedule.Name,
		schedule.WeekStartDate,
		schedule.WeekEndDate,
		schedule.Status,
		schedule.IsTemplate,
		schedule.SchemaVersion,
		daysJSON,
		employeesJSON,
		schedule.Version,
		schedule.CreatedAt,
		schedule.CreatedBy,
		schedule.LastUpdatedAt,
		schedule.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("schedule ID " + schedule.ScheduleID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save schedule "+schedule.ScheduleID, err)
	}
	return nil
}

func (r *PgxScheduleRepository) UpdateSchedule(ctx context.Context, schedule domain.Schedule, expectedVersion *int64) error {
	daysJSON, employeesJSON, err := marshalScheduleDocs(schedule)
	if err != nil {
		return err
	}

	query := `
		UPDATE schedules
		SET name = $1, week_start_date = $2, week_end_date = $3, status = $4,
			is_template = $5, schema_version = $6, days = $7, uploaded_employees = $8,
			version = version + 1, last_updated_at = $9, last_updated_by = $10
		WHERE schedule_id = $11
	`
	args := []any{
		schedule.Name,
		schedule.WeekStartDate,
		schedule.WeekEndDate,
		schedule.Status,
		schedule.IsTemplate,
		schedule.SchemaVersion,
		daysJSON,
		employeesJSON,
		schedule.LastUpdatedAt,
		schedule.LastUpdatedBy,
		schedule.ScheduleID,
	}
	if expectedVersion != nil {
		args = append(args, *expectedVersion)
		query += ` AND version = $` + strconv.Itoa(len(args))
	}
	query += `;`

	result, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update schedule "+schedule.ScheduleID, err)
	}
	if result.RowsAffected() == 0 {
		if expectedVersion != nil {
			// The row may exist at another version; treat a vanished row the
			// same way since the caller's view is stale either way.
			return apperrors.ErrConflict
		}
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxScheduleRepository) DeleteSchedule(ctx context.Context, scheduleID string) error {
	query := `DELETE FROM schedules WHERE schedule_id = $1;`
	result, err := r.DB.Exec(ctx, query, scheduleID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete schedule "+scheduleID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func marshalScheduleDocs(schedule domain.Schedule) ([]byte, []byte, error) {
	daysJSON, err := json.Marshal(schedule.Days)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to encode days document for schedule "+schedule.ScheduleID, err)
	}
	employees := schedule.UploadedEmployees
	if employees == nil {
		employees = []domain.UploadedEmployee{}
	}
	employeesJSON, err := json.Marshal(employees)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to encode uploaded employees for schedule "+schedule.ScheduleID, err)
	}
	return daysJSON, employeesJSON, nil
}
