package services

import (
	"context"
	"errors"

	"github.com/ShiftWise/shiftwise_app/internal/apperrors"
	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	"github.com/ShiftWise/shiftwise_app/internal/dto"
	"github.com/ShiftWise/shiftwise_app/internal/utils/clocktime"
	"github.com/google/uuid"
)

// lockedForMutation front-runs every structural mutation: published live
// rosters must be unpublished (or copied) before their structure changes.
func (s *scheduleService) lockedForMutation(ctx context.Context, storeID, scheduleID string) (*domain.Schedule, error) {
	sched, err := s.getOwnedSchedule(ctx, storeID, scheduleID)
	if err != nil {
		return nil, err
	}
	if sched.StructurallyLocked() {
		s.LogDebug(ctx, "rejected mutation of published schedule", "schedule_id", scheduleID)
		return nil, apperrors.ErrLockedSchedule
	}
	return sched, nil
}

// slotPositions resolves a slot reference to the position list it addresses,
// either a fixed shift (period index) or a flexible block (block id).
func slotPositions(sched *domain.Schedule, ref dto.SlotRef) (*[]domain.Position, error) {
	day, err := sched.Day(ref.DayIndex)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	switch {
	case ref.PeriodIndex != nil:
		shift, err := day.ShiftByPeriodIndex(*ref.PeriodIndex)
		if err != nil {
			return nil, apperrors.NewNotFoundError(err.Error())
		}
		return &shift.Positions, nil
	case ref.BlockID != nil:
		block, err := day.BlockByID(*ref.BlockID)
		if err != nil {
			return nil, apperrors.NewNotFoundError(err.Error())
		}
		return &block.Positions, nil
	}
	return nil, apperrors.NewValidationFailedError("slot must reference a periodIndex or a blockID")
}

func positionByID(positions []domain.Position, id string) (*domain.Position, error) {
	for i := range positions {
		if positions[i].ID == id {
			return &positions[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("position " + id + " not found in slot")
}

func (s *scheduleService) AssignEmployee(ctx context.Context, storeID string, scheduleID string, req dto.AssignEmployeeRequest, userID string) (*domain.Schedule, error) {
	sched, err := s.lockedForMutation(ctx, storeID, scheduleID)
	if err != nil {
		return nil, err
	}
	positions, err := slotPositions(sched, req.SlotRef)
	if err != nil {
		return nil, err
	}
	pos, err := positionByID(*positions, req.PositionID)
	if err != nil {
		return nil, err
	}

	ref := req.Employee.ToDomain()
	if ref == nil {
		pos.Unassign()
	} else {
		if err := ref.Validate(); err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		if ref.IsKnown() {
			// Directory references must resolve inside the caller's store.
			employee, err := s.userRepo.FindUserByID(ctx, ref.UserID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, apperrors.NewValidationFailedError("employee " + ref.UserID + " is not in the directory")
				}
				return nil, err
			}
			if employee.StoreID != storeID {
				return nil, apperrors.NewValidationFailedError("employee " + ref.UserID + " belongs to another store")
			}
		}
		if err := pos.Assign(ref); err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
	}

	return s.persist(ctx, sched, nil, userID)
}

func (s *scheduleService) AddPosition(ctx context.Context, storeID string, scheduleID string, req dto.AddPositionRequest, userID string) (*domain.Position, error) {
	sched, err := s.lockedForMutation(ctx, storeID, scheduleID)
	if err != nil {
		return nil, err
	}
	positions, err := slotPositions(sched, req.SlotRef)
	if err != nil {
		return nil, err
	}
	dept, err := domain.ParseDepartment(req.Department)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	pos := domain.NewPosition(req.Name, dept)
	*positions = append(*positions, pos)

	if _, err := s.persist(ctx, sched, nil, userID); err != nil {
		return nil, err
	}
	return &pos, nil
}

func (s *scheduleService) UpdatePosition(ctx context.Context, storeID string, scheduleID string, req dto.UpdatePositionRequest, userID string) (*domain.Position, error) {
	sched, err := s.lockedForMutation(ctx, storeID, scheduleID)
	if err != nil {
		return nil, err
	}
	positions, err := slotPositions(sched, req.SlotRef)
	if err != nil {
		return nil, err
	}
	pos, err := positionByID(*positions, req.PositionID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pos.Name = *req.Name
	}
	if req.Department != nil {
		dept, err := domain.ParseDepartment(*req.Department)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		pos.Department = dept
	}
	if req.Status != nil {
		status := domain.PositionStatus(*req.Status)
		if status != domain.PositionAssigned {
			// Marking a slot open or unassigned clears whoever held it.
			pos.AssignedEmployee = nil
		}
		pos.Status = status
	}
	if err := pos.Validate(); err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	if _, err := s.persist(ctx, sched, nil, userID); err != nil {
		return nil, err
	}
	updated := pos.Clone()
	return &updated, nil
}

func (s *scheduleService) DeletePosition(ctx context.Context, storeID string, scheduleID string, req dto.DeletePositionRequest, userID string) (*dto.DeletionResult, error) {
	sched, err := s.lockedForMutation(ctx, storeID, scheduleID)
	if err != nil {
		return nil, err
	}
	positions, err := slotPositions(sched, req.SlotRef)
	if err != nil {
		return nil, err
	}

	before := len(*positions)
	kept := make([]domain.Position, 0, before)
	for _, p := range *positions {
		if p.ID != req.PositionID {
			kept = append(kept, p)
		}
	}
	result := &dto.DeletionResult{CountBefore: before, CountAfter: len(kept)}
	if result.CountAfter == before {
		// Nothing matched; report the no-op without a write.
		return result, nil
	}

	*positions = kept
	if _, err := s.persist(ctx, sched, nil, userID); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *scheduleService) AddTimeBlock(ctx context.Context, storeID string, scheduleID string, req dto.AddTimeBlockRequest, userID string) (*domain.TimeBlock, error) {
	sched, err := s.lockedForMutation(ctx, storeID, scheduleID)
	if err != nil {
		return nil, err
	}
	day, err := sched.Day(req.DayIndex)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	if len(day.Shifts) > 0 {
		return nil, apperrors.NewValidationFailedError("day uses fixed labor periods; migrate it to time blocks first")
	}
	if !validWindow(req.StartTime, req.EndTime) {
		return nil, apperrors.NewValidationFailedError("time block window is malformed or empty")
	}

	positions := make([]domain.Position, 0, len(req.Positions))
	for i := range req.Positions {
		pos, err := req.Positions[i].ToDomain()
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		positions = append(positions, pos)
	}

	block := domain.TimeBlock{
		ID:        uuid.NewString(),
		Label:     req.Label,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Positions: positions,
	}
	day.Blocks = append(day.Blocks, block)

	if _, err := s.persist(ctx, sched, nil, userID); err != nil {
		return nil, err
	}
	return &block, nil
}

func (s *scheduleService) UpdateTimeBlock(ctx context.Context, storeID string, scheduleID string, req dto.UpdateTimeBlockRequest, userID string) (*domain.TimeBlock, error) {
	sched, err := s.lockedForMutation(ctx, storeID, scheduleID)
	if err != nil {
		return nil, err
	}
	day, err := sched.Day(req.DayIndex)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	block, err := day.BlockByID(req.BlockID)
	if err != nil {
		return nil, apperrors.NewNotFoundError(err.Error())
	}

	if req.Label != nil {
		block.Label = *req.Label
	}
	if req.StartTime != nil {
		block.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		block.EndTime = *req.EndTime
	}
	if !validWindow(block.StartTime, block.EndTime) {
		return nil, apperrors.NewValidationFailedError("time block window is malformed or empty")
	}

	if _, err := s.persist(ctx, sched, nil, userID); err != nil {
		return nil, err
	}
	updated := block.Clone()
	return &updated, nil
}

func (s *scheduleService) DeleteTimeBlock(ctx context.Context, storeID string, scheduleID string, req dto.DeleteTimeBlockRequest, userID string) (*dto.DeletionResult, error) {
	sched, err := s.lockedForMutation(ctx, storeID, scheduleID)
	if err != nil {
		return nil, err
	}
	day, err := sched.Day(req.DayIndex)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	before := len(day.Blocks)
	kept := make([]domain.TimeBlock, 0, before)
	for _, b := range day.Blocks {
		if b.ID != req.BlockID {
			kept = append(kept, b)
		}
	}
	result := &dto.DeletionResult{CountBefore: before, CountAfter: len(kept)}
	if result.CountAfter == before {
		return result, nil
	}
	if len(kept) == 0 {
		// A day must keep at least one representation of its slots.
		return nil, apperrors.NewValidationFailedError("cannot remove the last time block of a day")
	}

	day.Blocks = kept
	if _, err := s.persist(ctx, sched, nil, userID); err != nil {
		return nil, err
	}
	return result, nil
}

// validWindow requires well-formed 24-hour bounds with a strictly positive span.
func validWindow(start, end string) bool {
	startMin, err := clocktime.Minutes(start)
	if err != nil {
		return false
	}
	endMin, err := clocktime.Minutes(end)
	if err != nil {
		return false
	}
	return startMin < endMin
}
