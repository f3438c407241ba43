package repositories

import (
	"context"
	"time"

	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
)

// ScheduleFilter narrows ListSchedules results. Nil fields are not filtered on.
type ScheduleFilter struct {
	IsTemplate *bool
	Status     *domain.ScheduleStatus
	WeekOf     *time.Time // matches schedules whose week contains this date
}

// ScheduleReader defines read operations for schedule documents
type ScheduleReader interface {
	// FindScheduleByID retrieves a schedule aggregate by its ID.
	FindScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error)

	// ListSchedules retrieves all schedules for a store matching the filter,
	// newest week first.
	ListSchedules(ctx context.Context, storeID string, filter ScheduleFilter) ([]domain.Schedule, error)
}

// ScheduleWriter defines write operations for schedule documents
type ScheduleWriter interface {
	// SaveSchedule persists a new schedule aggregate.
	SaveSchedule(ctx context.Context, schedule domain.Schedule) error

	// UpdateSchedule replaces the stored aggregate wholesale and bumps its
	// version. When expectedVersion is non-nil the write is conditional and
	// fails with ErrConflict on a stale version; otherwise last write wins.
	UpdateSchedule(ctx context.Context, schedule domain.Schedule, expectedVersion *int64) error

	// DeleteSchedule hard-deletes the aggregate. There is no soft delete.
	DeleteSchedule(ctx context.Context, scheduleID string) error
}

// ScheduleRepositoryFacade combines all schedule repository interfaces
type ScheduleRepositoryFacade interface {
	ScheduleReader
	ScheduleWriter
}
