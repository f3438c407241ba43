package services

import (
	"context"
	"errors"
	"time"

	"github.com/ShiftWise/shiftwise_app/internal/apperrors"
	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	portsrepo "github.com/ShiftWise/shiftwise_app/internal/core/ports/repositories"
	portssvc "github.com/ShiftWise/shiftwise_app/internal/core/ports/services"
	"github.com/ShiftWise/shiftwise_app/internal/dto"
	"github.com/google/uuid"
)

type scheduleService struct {
	BaseService
	scheduleRepo portsrepo.ScheduleRepositoryFacade
	catalogRepo  portsrepo.DefaultPositionsRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
}

// NewScheduleService creates the schedule lifecycle service.
func NewScheduleService(scheduleRepo portsrepo.ScheduleRepositoryFacade, catalogRepo portsrepo.DefaultPositionsRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.ScheduleSvcFacade {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		userRepo:     userRepo,
	}
}

var _ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)

// getOwnedSchedule loads a schedule and enforces store ownership. Schedules of
// another store are reported as not found rather than forbidden so their
// existence does not leak across tenants.
func (s *scheduleService) getOwnedSchedule(ctx context.Context, storeID, scheduleID string) (*domain.Schedule, error) {
	sched, err := s.scheduleRepo.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if sched.StoreID != storeID {
		s.LogDebug(ctx, "schedule belongs to another store", "schedule_id", scheduleID, "owner_store", sched.StoreID)
		return nil, apperrors.ErrNotFound
	}
	return sched, nil
}

func (s *scheduleService) GetSchedule(ctx context.Context, storeID string, scheduleID string) (*domain.Schedule, error) {
	return s.getOwnedSchedule(ctx, storeID, scheduleID)
}

func (s *scheduleService) ListSchedules(ctx context.Context, storeID string, params dto.ListSchedulesParams) ([]domain.Schedule, error) {
	filter := portsrepo.ScheduleFilter{IsTemplate: params.IsTemplate}
	if params.Status != nil {
		status := domain.ScheduleStatus(*params.Status)
		if !status.Valid() {
			return nil, apperrors.NewValidationFailedError("unknown schedule status " + *params.Status)
		}
		filter.Status = &status
	}
	if params.WeekOf != nil {
		weekOf, err := time.Parse(dto.DateLayout, *params.WeekOf)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid weekOf date " + *params.WeekOf)
		}
		filter.WeekOf = &weekOf
	}
	return s.scheduleRepo.ListSchedules(ctx, storeID, filter)
}

func (s *scheduleService) ListTemplates(ctx context.Context, storeID string) ([]domain.Schedule, error) {
	isTemplate := true
	return s.scheduleRepo.ListSchedules(ctx, storeID, portsrepo.ScheduleFilter{IsTemplate: &isTemplate})
}

func (s *scheduleService) CreateSchedule(ctx context.Context, storeID string, req dto.CreateScheduleRequest, userID string) (*domain.Schedule, error) {
	weekStart, weekEnd, err := parseWeekBounds(req.WeekStartDate, req.WeekEndDate)
	if err != nil {
		return nil, err
	}

	var days []domain.Day
	if len(req.Days) > 0 {
		days, err = dto.DaysToDomain(req.Days)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
	} else {
		days, err = s.synthesizeWeek(ctx, storeID, weekStart, req.SchemaVersion)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	sched := domain.Schedule{
		ScheduleID:    uuid.NewString(),
		StoreID:       storeID,
		Name:          req.Name,
		WeekStartDate: weekStart,
		WeekEndDate:   weekEnd,
		Status:        domain.StatusDraft,
		IsTemplate:    req.IsTemplate,
		SchemaVersion: req.SchemaVersion,
		Days:          days,
		Version:       1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := sched.Validate(); err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	if err := s.scheduleRepo.SaveSchedule(ctx, sched); err != nil {
		s.LogError(ctx, err, "failed to save new schedule", "schedule_id", sched.ScheduleID)
		return nil, err
	}
	s.LogInfo(ctx, "schedule created", "schedule_id", sched.ScheduleID, "is_template", sched.IsTemplate)
	return &sched, nil
}

// synthesizeWeek builds seven days from the canonical labor periods, seeding
// each slot from the store's position catalog. Missing catalog entries yield
// empty slots, never an error.
func (s *scheduleService) synthesizeWeek(ctx context.Context, storeID string, weekStart time.Time, schemaVersion int) ([]domain.Day, error) {
	days := make([]domain.Day, 0, domain.DaysPerWeek)
	for weekday := 0; weekday < domain.DaysPerWeek; weekday++ {
		day := domain.Day{Date: weekStart.AddDate(0, 0, weekday)}
		for _, w := range domain.PeriodWindows() {
			positions, err := s.seedPositions(ctx, storeID, weekday, w.Period)
			if err != nil {
				return nil, err
			}
			if schemaVersion == 2 {
				day.Blocks = append(day.Blocks, domain.TimeBlock{
					ID:        uuid.NewString(),
					Label:     string(w.Period),
					StartTime: w.StartTime,
					EndTime:   w.EndTime,
					Positions: positions,
				})
			} else {
				day.Shifts = append(day.Shifts, domain.Shift{
					Period:    w.Period,
					StartTime: w.StartTime,
					EndTime:   w.EndTime,
					Positions: positions,
				})
			}
		}
		days = append(days, day)
	}
	return days, nil
}

func (s *scheduleService) seedPositions(ctx context.Context, storeID string, weekday int, period domain.LaborPeriod) ([]domain.Position, error) {
	set, err := s.catalogRepo.FindDefaultPositions(ctx, storeID, weekday, period)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return set.Materialize(), nil
}

func (s *scheduleService) UpdateSchedule(ctx context.Context, storeID string, scheduleID string, req dto.UpdateScheduleRequest, userID string) (*domain.Schedule, error) {
	sched, err := s.getOwnedSchedule(ctx, storeID, scheduleID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		next := domain.ScheduleStatus(*req.Status)
		if !sched.Status.CanTransitionTo(next) {
			return nil, apperrors.NewValidationFailedError("cannot transition schedule from " + string(sched.Status) + " to " + string(next))
		}
		sched.Status = next
	}
	if req.Name != nil {
		sched.Name = *req.Name
	}
	if req.WeekStartDate != nil {
		weekStart, err := time.Parse(dto.DateLayout, *req.WeekStartDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid weekStartDate")
		}
		sched.WeekStartDate = weekStart
	}
	if req.WeekEndDate != nil {
		weekEnd, err := time.Parse(dto.DateLayout, *req.WeekEndDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid weekEndDate")
		}
		sched.WeekEndDate = weekEnd
	}

	if req.Days != nil {
		// The lock is evaluated against the patched status, so one request may
		// unpublish and replace the day grid together.
		if sched.StructurallyLocked() {
			return nil, apperrors.ErrLockedSchedule
		}
		days, err := dto.DaysToDomain(*req.Days)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		sched.Days = days
		if len(days) > 0 && days[0].SchemaVersion() != 0 {
			sched.SchemaVersion = days[0].SchemaVersion()
		}
	}

	if err := sched.Validate(); err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	return s.persist(ctx, sched, req.ExpectedVersion, userID)
}

// persist stamps the audit fields and writes the aggregate back, mirroring the
// repository's version bump on the in-memory copy.
func (s *scheduleService) persist(ctx context.Context, sched *domain.Schedule, expectedVersion *int64, userID string) (*domain.Schedule, error) {
	sched.LastUpdatedAt = time.Now().UTC()
	sched.LastUpdatedBy = userID
	if err := s.scheduleRepo.UpdateSchedule(ctx, *sched, expectedVersion); err != nil {
		s.LogError(ctx, err, "failed to update schedule", "schedule_id", sched.ScheduleID)
		return nil, err
	}
	sched.Version++
	return sched, nil
}

func (s *scheduleService) DeleteSchedule(ctx context.Context, storeID string, scheduleID string) error {
	if _, err := s.getOwnedSchedule(ctx, storeID, scheduleID); err != nil {
		return err
	}
	if err := s.scheduleRepo.DeleteSchedule(ctx, scheduleID); err != nil {
		return err
	}
	s.LogInfo(ctx, "schedule deleted", "schedule_id", scheduleID)
	return nil
}

func (s *scheduleService) CopySchedule(ctx context.Context, storeID string, scheduleID string, req dto.CopyScheduleRequest, userID string) (*domain.Schedule, error) {
	src, err := s.getOwnedSchedule(ctx, storeID, scheduleID)
	if err != nil {
		return nil, err
	}

	clone := src.Clone()
	clone.ScheduleID = uuid.NewString()
	clone.Status = domain.StatusDraft
	clone.Version = 1
	// Imported roster rows describe the source week; they do not travel.
	clone.UploadedEmployees = nil

	if req.Name != nil {
		clone.Name = *req.Name
	} else {
		clone.Name = "Copy of " + src.Name
	}
	if req.IsTemplate != nil {
		clone.IsTemplate = *req.IsTemplate
	}
	if req.WeekStartDate != nil {
		weekStart, err := time.Parse(dto.DateLayout, *req.WeekStartDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid weekStartDate")
		}
		clone.WeekStartDate = weekStart
		clone.WeekEndDate = weekStart.AddDate(0, 0, domain.DaysPerWeek-1)
		for i := range clone.Days {
			clone.Days[i].Date = weekStart.AddDate(0, 0, i)
		}
	}
	if req.WeekEndDate != nil {
		weekEnd, err := time.Parse(dto.DateLayout, *req.WeekEndDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid weekEndDate")
		}
		clone.WeekEndDate = weekEnd
	}

	now := time.Now().UTC()
	clone.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	if err := clone.Validate(); err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	if err := s.scheduleRepo.SaveSchedule(ctx, clone); err != nil {
		s.LogError(ctx, err, "failed to save schedule copy", "source_schedule_id", scheduleID)
		return nil, err
	}
	s.LogInfo(ctx, "schedule copied", "source_schedule_id", scheduleID, "schedule_id", clone.ScheduleID)
	return &clone, nil
}

func (s *scheduleService) SaveAsTemplate(ctx context.Context, storeID string, scheduleID string, req dto.SaveAsTemplateRequest, userID string) (*domain.Schedule, error) {
	isTemplate := true
	return s.CopySchedule(ctx, storeID, scheduleID, dto.CopyScheduleRequest{
		Name:       &req.Name,
		IsTemplate: &isTemplate,
	}, userID)
}

func parseWeekBounds(startRaw, endRaw string) (time.Time, time.Time, error) {
	weekStart, err := time.Parse(dto.DateLayout, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationFailedError("invalid weekStartDate")
	}
	weekEnd, err := time.Parse(dto.DateLayout, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationFailedError("invalid weekEndDate")
	}
	if !weekEnd.Equal(weekStart.AddDate(0, 0, domain.DaysPerWeek-1)) {
		return time.Time{}, time.Time{}, apperrors.NewValidationFailedError("week must span exactly seven days")
	}
	return weekStart, weekEnd, nil
}
