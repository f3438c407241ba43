package services

import (
	"context"

	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	"github.com/ShiftWise/shiftwise_app/internal/dto"
)

// ScheduleReaderSvc defines read operations for schedules
type ScheduleReaderSvc interface {
	// GetSchedule retrieves a schedule owned by the caller's store.
	// Schedules belonging to another store surface as not found.
	GetSchedule(ctx context.Context, storeID string, scheduleID string) (*domain.Schedule, error)

	// ListSchedules retrieves the store's schedules matching the filters.
	ListSchedules(ctx context.Context, storeID string, params dto.ListSchedulesParams) ([]domain.Schedule, error)

	// ListTemplates retrieves the store's reusable templates.
	ListTemplates(ctx context.Context, storeID string) ([]domain.Schedule, error)
}

// ScheduleWriterSvc defines lifecycle operations for schedules
type ScheduleWriterSvc interface {
	// CreateSchedule persists a new draft schedule. When req.Days is omitted,
	// seven days are synthesized from the time taxonomy and position catalog.
	CreateSchedule(ctx context.Context, storeID string, req dto.CreateScheduleRequest, userID string) (*domain.Schedule, error)

	// UpdateSchedule applies a partial patch. A supplied days array replaces
	// the stored one wholesale; status changes run the lifecycle state machine.
	UpdateSchedule(ctx context.Context, storeID string, scheduleID string, req dto.UpdateScheduleRequest, userID string) (*domain.Schedule, error)

	// DeleteSchedule hard-deletes the aggregate.
	DeleteSchedule(ctx context.Context, storeID string, scheduleID string) error

	// CopySchedule deep-clones a schedule into a new draft, applying overrides.
	CopySchedule(ctx context.Context, storeID string, scheduleID string, req dto.CopyScheduleRequest, userID string) (*domain.Schedule, error)

	// SaveAsTemplate deep-copies a schedule into a reusable draft template.
	SaveAsTemplate(ctx context.Context, storeID string, scheduleID string, req dto.SaveAsTemplateRequest, userID string) (*domain.Schedule, error)
}

// SchedulePositionSvc defines structural and assignment mutations inside a
// schedule. Every operation rejects published non-template schedules with
// ErrLockedSchedule before touching the document.
type SchedulePositionSvc interface {
	// AssignEmployee assigns an employee (by directory id or bare name) to a
	// position, or unassigns it when req.Employee is null.
	AssignEmployee(ctx context.Context, storeID string, scheduleID string, req dto.AssignEmployeeRequest, userID string) (*domain.Schedule, error)

	AddPosition(ctx context.Context, storeID string, scheduleID string, req dto.AddPositionRequest, userID string) (*domain.Position, error)
	UpdatePosition(ctx context.Context, storeID string, scheduleID string, req dto.UpdatePositionRequest, userID string) (*domain.Position, error)
	// DeletePosition reports the position count before and after the mutation
	// so callers can distinguish a removal from a no-op.
	DeletePosition(ctx context.Context, storeID string, scheduleID string, req dto.DeletePositionRequest, userID string) (*dto.DeletionResult, error)

	AddTimeBlock(ctx context.Context, storeID string, scheduleID string, req dto.AddTimeBlockRequest, userID string) (*domain.TimeBlock, error)
	UpdateTimeBlock(ctx context.Context, storeID string, scheduleID string, req dto.UpdateTimeBlockRequest, userID string) (*domain.TimeBlock, error)
	DeleteTimeBlock(ctx context.Context, storeID string, scheduleID string, req dto.DeleteTimeBlockRequest, userID string) (*dto.DeletionResult, error)
}

// ScheduleSvcFacade combines all schedule-related service interfaces
type ScheduleSvcFacade interface {
	ScheduleReaderSvc
	ScheduleWriterSvc
	SchedulePositionSvc
}
