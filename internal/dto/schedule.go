package dto

import (
	"time"

	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// --- Schedule payload fragments ---

// EmployeeRefPayload mirrors domain.EmployeeRef on the wire: exactly one of
// userID or name is expected.
type EmployeeRefPayload struct {
	UserID string `json:"userID,omitempty"`
	Name   string `json:"name,omitempty"`
}

// ToDomain converts the payload into a domain reference, nil when empty.
func (p *EmployeeRefPayload) ToDomain() *domain.EmployeeRef {
	if p == nil || (p.UserID == "" && p.Name == "") {
		return nil
	}
	return &domain.EmployeeRef{UserID: p.UserID, Name: p.Name}
}

// PositionPayload is one position inside a day payload.
type PositionPayload struct {
	ID               string              `json:"id,omitempty"`
	Name             string              `json:"name" binding:"required"`
	Department       string              `json:"department" binding:"required"`
	Status           string              `json:"status,omitempty"`
	AssignedEmployee *EmployeeRefPayload `json:"assignedEmployee,omitempty"`
}

// ShiftPayload is a legacy fixed-period slot inside a day payload.
type ShiftPayload struct {
	Type      string            `json:"type" binding:"required"`
	StartTime string            `json:"startTime" binding:"required,clocktime"`
	EndTime   string            `json:"endTime" binding:"required,clocktime"`
	Positions []PositionPayload `json:"positions"`
}

// TimeBlockPayload is a flexible slot inside a day payload.
type TimeBlockPayload struct {
	ID        string            `json:"id,omitempty"`
	Label     string            `json:"label,omitempty"`
	StartTime string            `json:"startTime" binding:"required,clocktime"`
	EndTime   string            `json:"endTime" binding:"required,clocktime"`
	Positions []PositionPayload `json:"positions"`
}

// DayPayload is one calendar day of a schedule on the wire. Exactly one of
// shifts or timeBlocks must be populated.
type DayPayload struct {
	Date       string             `json:"date" binding:"required,datetime=2006-01-02"`
	Shifts     []ShiftPayload     `json:"shifts,omitempty"`
	TimeBlocks []TimeBlockPayload `json:"timeBlocks,omitempty"`
}

// --- Requests ---

// CreateScheduleRequest defines data for creating a new schedule. When days is
// omitted, seven days are synthesized from the position catalog.
type CreateScheduleRequest struct {
	Name          string       `json:"name" binding:"required"`
	WeekStartDate string       `json:"weekStartDate" binding:"required,datetime=2006-01-02"`
	WeekEndDate   string       `json:"weekEndDate" binding:"required,datetime=2006-01-02"`
	SchemaVersion int          `json:"schemaVersion" binding:"required,oneof=1 2"`
	IsTemplate    bool         `json:"isTemplate"`
	Days          []DayPayload `json:"days,omitempty"`
}

// UpdateScheduleRequest defines a partial patch. A non-nil Days replaces the
// whole day array transactionally; partial merges are never performed.
// ExpectedVersion, when set, makes the write conditional on the stored version.
type UpdateScheduleRequest struct {
	Name            *string       `json:"name,omitempty"`
	Status          *string       `json:"status,omitempty" binding:"omitempty,oneof=draft published archived"`
	WeekStartDate   *string       `json:"weekStartDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	WeekEndDate     *string       `json:"weekEndDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Days            *[]DayPayload `json:"days,omitempty"`
	ExpectedVersion *int64        `json:"expectedVersion,omitempty"`
}

// CopyScheduleRequest overrides fields on a deep-cloned schedule.
type CopyScheduleRequest struct {
	Name          *string `json:"name,omitempty"`
	WeekStartDate *string `json:"weekStartDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	WeekEndDate   *string `json:"weekEndDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	IsTemplate    *bool   `json:"isTemplate,omitempty"`
}

// SaveAsTemplateRequest names the template created from an existing schedule.
type SaveAsTemplateRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListSchedulesParams filters schedule listings.
type ListSchedulesParams struct {
	IsTemplate *bool   `form:"isTemplate"`
	Status     *string `form:"status" binding:"omitempty,oneof=draft published archived"`
	WeekOf     *string `form:"weekOf" binding:"omitempty,datetime=2006-01-02"`
}

// SlotRef addresses one shift (by canonical period index, schema v1) or one
// time block (by id, schema v2) within a day.
type SlotRef struct {
	DayIndex    int     `json:"dayIndex" binding:"min=0,max=6"`
	PeriodIndex *int    `json:"periodIndex,omitempty" binding:"omitempty,min=0,max=5"`
	BlockID     *string `json:"blockID,omitempty"`
}

// AssignEmployeeRequest assigns (or, with a null employee, unassigns) a
// position within the addressed slot.
type AssignEmployeeRequest struct {
	SlotRef
	PositionID string              `json:"positionID" binding:"required"`
	Employee   *EmployeeRefPayload `json:"employee"`
}

// AddPositionRequest appends a position to the addressed slot.
type AddPositionRequest struct {
	SlotRef
	Name       string `json:"name" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// UpdatePositionRequest renames or re-tags a position within the addressed slot.
type UpdatePositionRequest struct {
	SlotRef
	PositionID string  `json:"positionID" binding:"required"`
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
	Status     *string `json:"status,omitempty" binding:"omitempty,oneof=unassigned assigned open"`
}

// DeletePositionRequest removes a position from the addressed slot.
type DeletePositionRequest struct {
	SlotRef
	PositionID string `json:"positionID" binding:"required"`
}

// AddTimeBlockRequest appends a flexible time block to a day.
type AddTimeBlockRequest struct {
	DayIndex  int               `json:"dayIndex" binding:"min=0,max=6"`
	Label     string            `json:"label,omitempty"`
	StartTime string            `json:"startTime" binding:"required,clocktime"`
	EndTime   string            `json:"endTime" binding:"required,clocktime"`
	Positions []PositionPayload `json:"positions"`
}

// UpdateTimeBlockRequest adjusts a block's label or window.
type UpdateTimeBlockRequest struct {
	DayIndex  int     `json:"dayIndex" binding:"min=0,max=6"`
	BlockID   string  `json:"blockID" binding:"required"`
	Label     *string `json:"label,omitempty"`
	StartTime *string `json:"startTime,omitempty" binding:"omitempty,clocktime"`
	EndTime   *string `json:"endTime,omitempty" binding:"omitempty,clocktime"`
}

// DeleteTimeBlockRequest removes a block from a day.
type DeleteTimeBlockRequest struct {
	DayIndex int    `json:"dayIndex" binding:"min=0,max=6"`
	BlockID  string `json:"blockID" binding:"required"`
}

// DeletionResult reports element counts around a structural delete so callers
// can tell a successful removal (delta 1) from a no-op (delta 0).
type DeletionResult struct {
	CountBefore int `json:"countBefore"`
	CountAfter  int `json:"countAfter"`
}

// --- Responses ---

// ScheduleResponse is the full aggregate on the wire.
type ScheduleResponse struct {
	ScheduleID        string                    `json:"scheduleID"`
	StoreID           string                    `json:"store"`
	Name              string                    `json:"name"`
	WeekStartDate     string                    `json:"weekStartDate"`
	WeekEndDate       string                    `json:"weekEndDate"`
	Status            domain.ScheduleStatus     `json:"status"`
	IsTemplate        bool                      `json:"isTemplate"`
	SchemaVersion     int                       `json:"schemaVersion"`
	Days              []domain.Day              `json:"days"`
	UploadedEmployees []domain.UploadedEmployee `json:"uploadedEmployees"`
	Version           int64                     `json:"version"`
	CreatedAt         time.Time                 `json:"createdAt"`
	CreatedBy         string                    `json:"createdBy"`
	LastUpdatedAt     time.Time                 `json:"lastUpdatedAt"`
	LastUpdatedBy     string                    `json:"lastUpdatedBy"`
}

// ToScheduleResponse converts the domain aggregate to its wire form.
func ToScheduleResponse(s *domain.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID:        s.ScheduleID,
		StoreID:           s.StoreID,
		Name:              s.Name,
		WeekStartDate:     s.WeekStartDate.Format(DateLayout),
		WeekEndDate:       s.WeekEndDate.Format(DateLayout),
		Status:            s.Status,
		IsTemplate:        s.IsTemplate,
		SchemaVersion:     s.SchemaVersion,
		Days:              s.Days,
		UploadedEmployees: s.UploadedEmployees,
		Version:           s.Version,
		CreatedAt:         s.CreatedAt,
		CreatedBy:         s.CreatedBy,
		LastUpdatedAt:     s.LastUpdatedAt,
		LastUpdatedBy:     s.LastUpdatedBy,
	}
}

// ListSchedulesResponse wraps a list of schedules.
type ListSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

// ToListSchedulesResponse converts a slice of schedules to wire form.
func ToListSchedulesResponse(schedules []domain.Schedule) ListSchedulesResponse {
	list := make([]ScheduleResponse, len(schedules))
	for i := range schedules {
		list[i] = ToScheduleResponse(&schedules[i])
	}
	return ListSchedulesResponse{Schedules: list}
}
