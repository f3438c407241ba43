package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ShiftWise/shiftwise_app/internal/apperrors"
	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	portsrepo "github.com/ShiftWise/shiftwise_app/internal/core/ports/repositories"
	portssvc "github.com/ShiftWise/shiftwise_app/internal/core/ports/services"
	"github.com/ShiftWise/shiftwise_app/internal/dto"
	"github.com/ShiftWise/shiftwise_app/internal/utils/clocktime"
	"github.com/ShiftWise/shiftwise_app/internal/utils/spreadsheet"
)

type importService struct {
	BaseService
	scheduleRepo portsrepo.ScheduleRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
}

// NewImportService creates the spreadsheet import service.
func NewImportService(scheduleRepo portsrepo.ScheduleRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.ImportSvcFacade {
	return &importService{scheduleRepo: scheduleRepo, userRepo: userRepo}
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

// dateLayouts are the calendar formats roster exports use in their day column.
var dateLayouts = []string{"2006-01-02", "1/2/2006", "01/02/2006", "1/2/06"}

func (s *importService) ImportSpreadsheet(ctx context.Context, storeID string, scheduleID string, filePath string, originalName string, userID string) (*dto.ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".csv", ".xls", ".xlsx":
	default:
		return nil, apperrors.NewValidationFailedError("unsupported spreadsheet format " + ext)
	}

	sched, err := s.scheduleRepo.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if sched.StoreID != storeID {
		return nil, apperrors.ErrNotFound
	}
	if sched.StructurallyLocked() {
		return nil, apperrors.ErrLockedSchedule
	}

	rows, err := spreadsheet.ReadRows(filePath)
	if err != nil {
		s.LogError(ctx, err, "failed to read spreadsheet", "file", originalName)
		return nil, apperrors.NewValidationFailedError("could not read spreadsheet: " + err.Error())
	}
	if len(rows) < 2 {
		return nil, apperrors.NewValidationFailedError("spreadsheet has no data rows")
	}

	headers := rows[0]
	nameIdx := spreadsheet.HeaderIndex(headers, "name", "employee", "employee name", "team member")
	timeIdx := spreadsheet.HeaderIndex(headers, "time", "shift time", "shift", "hours")
	dayIdx := spreadsheet.HeaderIndex(headers, "day", "date", "weekday")
	deptIdx := spreadsheet.HeaderIndex(headers, "department", "dept", "area")
	if nameIdx < 0 || timeIdx < 0 || dayIdx < 0 || deptIdx < 0 {
		return nil, apperrors.NewValidationFailedError("spreadsheet is missing a required column (name, day, time, department)")
	}

	directory := s.directoryByName(ctx, storeID)

	result := &dto.ImportResult{ScheduleID: scheduleID}
	var candidates []rosterCandidate
	for _, row := range rows[1:] {
		name := spreadsheet.Cell(row, nameIdx)
		timeRaw := spreadsheet.Cell(row, timeIdx)
		dayRaw := spreadsheet.Cell(row, dayIdx)
		deptRaw := spreadsheet.Cell(row, deptIdx)
		if name == "" || timeRaw == "" || dayRaw == "" || deptRaw == "" {
			result.Skipped++
			continue
		}
		start, end, err := clocktime.ParseRange(timeRaw)
		if err != nil {
			s.LogDebug(ctx, "skipping unparsable roster row", "name", name, "time", timeRaw)
			result.Skipped++
			continue
		}

		// The row is stored verbatim; normalization only feeds placement.
		sched.UploadedEmployees = append(sched.UploadedEmployees, domain.UploadedEmployee{
			Name:       name,
			Time:       timeRaw,
			Day:        dayRaw,
			Department: deptRaw,
		})
		result.Imported++

		candidate := rosterCandidate{
			Name:      name,
			UserID:    directory[strings.ToLower(name)],
			StartTime: start,
			EndTime:   end,
			DayIndex:  resolveDayIndex(sched, dayRaw),
		}
		// An unrecognized department imports verbatim but leaves the candidate
		// without a department, so it never matches a position.
		if dept, err := domain.ParseDepartment(deptRaw); err == nil {
			candidate.Department = dept
		}
		candidates = append(candidates, candidate)
	}

	if result.Imported == 0 {
		return nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("no usable rows in spreadsheet (%d skipped)", result.Skipped))
	}

	result.Assigned, result.Unplaced = autoAssign(sched, candidates)

	sched.LastUpdatedAt = time.Now().UTC()
	sched.LastUpdatedBy = userID
	if err := s.scheduleRepo.UpdateSchedule(ctx, *sched, nil); err != nil {
		s.LogError(ctx, err, "failed to persist imported roster", "schedule_id", scheduleID)
		return nil, err
	}

	s.LogInfo(ctx, "spreadsheet imported",
		"schedule_id", scheduleID,
		"imported", result.Imported,
		"skipped", result.Skipped,
		"assigned", result.Assigned,
		"unplaced", result.Unplaced)
	return result, nil
}

// directoryByName maps lowercased full names to directory user IDs so imported
// rows can be linked to known employees. A failed lookup degrades the import to
// name-only references instead of failing it.
func (s *importService) directoryByName(ctx context.Context, storeID string) map[string]string {
	users, err := s.userRepo.ListUsersByStore(ctx, storeID)
	if err != nil {
		s.LogError(ctx, err, "failed to load employee directory", "store_id", storeID)
		return nil
	}
	byName := make(map[string]string, len(users))
	for i := range users {
		byName[strings.ToLower(users[i].FullName)] = users[i].UserID
	}
	return byName
}

// resolveDayIndex maps a day cell to the schedule's day array: a calendar date
// inside the week, or a weekday name ("Monday", "mon"). Returns -1 when the
// cell resolves to nothing; such rows import verbatim but are never auto-placed.
func resolveDayIndex(sched *domain.Schedule, dayRaw string) int {
	cleaned := strings.TrimSpace(dayRaw)
	if cleaned == "" {
		return -1
	}

	for _, layout := range dateLayouts {
		date, err := time.Parse(layout, cleaned)
		if err != nil {
			continue
		}
		for i := range sched.Days {
			d := sched.Days[i].Date
			if d.Year() == date.Year() && d.YearDay() == date.YearDay() {
				return i
			}
		}
		return -1
	}

	lowered := strings.ToLower(cleaned)
	for i := range sched.Days {
		weekday := strings.ToLower(sched.Days[i].Date.Weekday().String())
		if lowered == weekday || lowered == weekday[:3] {
			return i
		}
	}
	return -1
}
