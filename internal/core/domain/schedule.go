package domain

import (
	"fmt"
	"time"

	"github.com/ShiftWise/shiftwise_app/internal/utils/clocktime"
	"github.com/google/uuid"
)

// ScheduleStatus is the lifecycle state of a schedule.
type ScheduleStatus string

const (
	StatusDraft     ScheduleStatus = "draft"
	StatusPublished ScheduleStatus = "published"
	StatusArchived  ScheduleStatus = "archived"
)

// Valid reports whether s is a known lifecycle state.
func (s ScheduleStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle state machine permits moving
// from s to next. Same-state transitions are permitted no-ops.
func (s ScheduleStatus) CanTransitionTo(next ScheduleStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusDraft:
		return next == StatusPublished
	case StatusPublished:
		return next == StatusDraft || next == StatusArchived
	case StatusArchived:
		return false
	}
	return false
}

// PositionStatus is the assignment state of a single position.
type PositionStatus string

const (
	PositionUnassigned PositionStatus = "unassigned"
	PositionAssigned   PositionStatus = "assigned"
	PositionOpen       PositionStatus = "open"
)

// Valid reports whether s is a known position status.
func (s PositionStatus) Valid() bool {
	switch s {
	case PositionUnassigned, PositionAssigned, PositionOpen:
		return true
	}
	return false
}

// EmployeeRef identifies the employee assigned to a position. Exactly one of
// UserID or Name is set: UserID references a directory user, while Name carries
// a bare display name for employees imported from a roster who have no account
// yet. Schedules are frequently populated from spreadsheets naming such people,
// so the split is intentional and every consumer must branch on IsKnown.
type EmployeeRef struct {
	UserID string `json:"userID,omitempty"`
	Name   string `json:"name,omitempty"`
}

// KnownEmployee builds a reference to a directory user.
func KnownEmployee(userID string) *EmployeeRef {
	return &EmployeeRef{UserID: userID}
}

// NamedEmployee builds a name-only reference for a not-yet-registered employee.
func NamedEmployee(name string) *EmployeeRef {
	return &EmployeeRef{Name: name}
}

// IsKnown reports whether the reference points at a directory user.
func (r *EmployeeRef) IsKnown() bool {
	return r != nil && r.UserID != ""
}

// Display returns the best human-readable label for the reference.
func (r *EmployeeRef) Display() string {
	if r == nil {
		return ""
	}
	if r.Name != "" {
		return r.Name
	}
	return r.UserID
}

// Validate rejects references that set both or neither variant.
func (r *EmployeeRef) Validate() error {
	if r == nil {
		return nil
	}
	if (r.UserID == "") == (r.Name == "") {
		return fmt.Errorf("%w: employee reference must carry exactly one of userID or name", errInvalidEmployeeRef)
	}
	return nil
}

var errInvalidEmployeeRef = fmt.Errorf("invalid employee reference")

// Position is a named, department-tagged labor slot within a shift or time
// block, assignable to one employee.
type Position struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Department       Department     `json:"department"`
	Status           PositionStatus `json:"status"`
	AssignedEmployee *EmployeeRef   `json:"assignedEmployee"`
}

// NewPosition creates an unassigned position with a fresh identifier.
// Position identifiers are unique within their owning shift/block, not globally.
func NewPosition(name string, dept Department) Position {
	return Position{
		ID:         uuid.NewString(),
		Name:       name,
		Department: dept,
		Status:     PositionUnassigned,
	}
}

// Assign places an employee into the position and marks it assigned.
func (p *Position) Assign(ref *EmployeeRef) error {
	if ref == nil {
		return fmt.Errorf("cannot assign a nil employee reference")
	}
	if err := ref.Validate(); err != nil {
		return err
	}
	p.AssignedEmployee = ref
	p.Status = PositionAssigned
	return nil
}

// Unassign clears the assignment and restores the unassigned state.
func (p *Position) Unassign() {
	p.AssignedEmployee = nil
	p.Status = PositionUnassigned
}

// Validate checks the position's structural invariants, including
// "assignedEmployee non-nil iff status is assigned".
func (p *Position) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("position %s has no name", p.ID)
	}
	if !p.Department.Valid() {
		return fmt.Errorf("position %q has invalid department %q", p.Name, p.Department)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("position %q has invalid status %q", p.Name, p.Status)
	}
	if (p.Status == PositionAssigned) != (p.AssignedEmployee != nil) {
		return fmt.Errorf("position %q: assignment state and assignedEmployee disagree", p.Name)
	}
	return p.AssignedEmployee.Validate()
}

// Clone returns a deep copy of the position.
func (p Position) Clone() Position {
	out := p
	if p.AssignedEmployee != nil {
		ref := *p.AssignedEmployee
		out.AssignedEmployee = &ref
	}
	return out
}

// Shift is a legacy (schema version 1) fixed labor-period slot within a day.
type Shift struct {
	Period    LaborPeriod `json:"type"`
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
	Positions []Position  `json:"positions"`
}

// Clone returns a deep copy of the shift.
func (s Shift) Clone() Shift {
	out := s
	out.Positions = clonePositions(s.Positions)
	return out
}

// TimeBlock is a caller-defined (schema version 2) time window within a day.
type TimeBlock struct {
	ID        string     `json:"id"`
	Label     string     `json:"label,omitempty"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	Positions []Position `json:"positions"`
}

// Clone returns a deep copy of the time block.
func (b TimeBlock) Clone() TimeBlock {
	out := b
	out.Positions = clonePositions(b.Positions)
	return out
}

func clonePositions(src []Position) []Position {
	if src == nil {
		return nil
	}
	out := make([]Position, len(src))
	for i, p := range src {
		out[i] = p.Clone()
	}
	return out
}

// Day is one calendar day of a schedule. A day holds exactly one representation:
// six fixed-period Shifts (schema version 1) or a list of TimeBlocks (schema
// version 2). The two never coexist on a single day; migration between them goes
// through ConvertToBlocks explicitly.
type Day struct {
	Date   time.Time   `json:"date"`
	Shifts []Shift     `json:"shifts,omitempty"`
	Blocks []TimeBlock `json:"timeBlocks,omitempty"`
}

// SchemaVersion reports which representation the day carries (1 or 2),
// or 0 if it carries neither.
func (d *Day) SchemaVersion() int {
	switch {
	case len(d.Shifts) > 0:
		return 1
	case len(d.Blocks) > 0:
		return 2
	}
	return 0
}

// Validate checks that the day holds exactly one representation and that its
// contents are structurally sound.
func (d *Day) Validate() error {
	if len(d.Shifts) > 0 && len(d.Blocks) > 0 {
		return fmt.Errorf("day %s carries both fixed shifts and time blocks", d.Date.Format("2006-01-02"))
	}
	if len(d.Shifts) == 0 && len(d.Blocks) == 0 {
		return fmt.Errorf("day %s carries neither fixed shifts nor time blocks", d.Date.Format("2006-01-02"))
	}
	for i := range d.Shifts {
		if !d.Shifts[i].Period.Valid() {
			return fmt.Errorf("day %s shift %d has unknown labor period %q", d.Date.Format("2006-01-02"), i, d.Shifts[i].Period)
		}
		for j := range d.Shifts[i].Positions {
			if err := d.Shifts[i].Positions[j].Validate(); err != nil {
				return err
			}
		}
	}
	seen := make(map[string]struct{}, len(d.Blocks))
	for i := range d.Blocks {
		b := &d.Blocks[i]
		if b.ID == "" {
			return fmt.Errorf("day %s block %d has no id", d.Date.Format("2006-01-02"), i)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("day %s has duplicate time block id %s", d.Date.Format("2006-01-02"), b.ID)
		}
		seen[b.ID] = struct{}{}
		if !clocktime.IsValid(b.StartTime) || !clocktime.IsValid(b.EndTime) {
			return fmt.Errorf("day %s block %s has malformed times %q-%q", d.Date.Format("2006-01-02"), b.ID, b.StartTime, b.EndTime)
		}
		for j := range b.Positions {
			if err := b.Positions[j].Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// ConvertToBlocks migrates a fixed-period day to the flexible representation.
// Each shift becomes a labelled block with the same window and positions.
// Already-flexible days are returned unchanged.
func (d *Day) ConvertToBlocks() {
	if len(d.Shifts) == 0 {
		return
	}
	blocks := make([]TimeBlock, 0, len(d.Shifts))
	for _, s := range d.Shifts {
		blocks = append(blocks, TimeBlock{
			ID:        uuid.NewString(),
			Label:     string(s.Period),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Positions: clonePositions(s.Positions),
		})
	}
	d.Shifts = nil
	d.Blocks = blocks
}

// ShiftByPeriodIndex returns the fixed shift for a canonical period index.
func (d *Day) ShiftByPeriodIndex(index int) (*Shift, error) {
	w, err := PeriodByIndex(index)
	if err != nil {
		return nil, err
	}
	for i := range d.Shifts {
		if d.Shifts[i].Period == w.Period {
			return &d.Shifts[i], nil
		}
	}
	return nil, fmt.Errorf("day has no shift for period %s", w.Period)
}

// BlockByID returns the time block with the given identifier.
func (d *Day) BlockByID(id string) (*TimeBlock, error) {
	for i := range d.Blocks {
		if d.Blocks[i].ID == id {
			return &d.Blocks[i], nil
		}
	}
	return nil, fmt.Errorf("day has no time block %s", id)
}

// BlocksOverlappingPeriod returns the flexible blocks whose window has any
// overlap with the canonical period at the given index, in array order.
func (d *Day) BlocksOverlappingPeriod(index int) []*TimeBlock {
	w, err := PeriodByIndex(index)
	if err != nil {
		return nil
	}
	var out []*TimeBlock
	for i := range d.Blocks {
		b := &d.Blocks[i]
		if clocktime.Overlaps(b.StartTime, b.EndTime, w.StartTime, w.EndTime) {
			out = append(out, b)
		}
	}
	return out
}

// Clone returns a deep copy of the day.
func (d Day) Clone() Day {
	out := Day{Date: d.Date}
	if d.Shifts != nil {
		out.Shifts = make([]Shift, len(d.Shifts))
		for i, s := range d.Shifts {
			out.Shifts[i] = s.Clone()
		}
	}
	if d.Blocks != nil {
		out.Blocks = make([]TimeBlock, len(d.Blocks))
		for i, b := range d.Blocks {
			out.Blocks[i] = b.Clone()
		}
	}
	return out
}

// UploadedEmployee is one spreadsheet row captured verbatim at import time,
// kept until it is reconciled into a position assignment manually.
type UploadedEmployee struct {
	Name       string `json:"name"`
	Time       string `json:"time"`
	Day        string `json:"day"`
	Department string `json:"department"`
}

// DaysPerWeek is the fixed length of a schedule's day list.
const DaysPerWeek = 7

// Schedule is the aggregate root: one roster for one store and one calendar
// week (or a reusable template when IsTemplate is set).
type Schedule struct {
	ScheduleID        string             `json:"scheduleID"`
	StoreID           string             `json:"store"`
	Name              string             `json:"name"`
	WeekStartDate     time.Time          `json:"weekStartDate"`
	WeekEndDate       time.Time          `json:"weekEndDate"`
	Status            ScheduleStatus     `json:"status"`
	IsTemplate        bool               `json:"isTemplate"`
	SchemaVersion     int                `json:"schemaVersion"` // 1 = fixed shifts, 2 = time blocks
	Days              []Day              `json:"days"`
	UploadedEmployees []UploadedEmployee `json:"uploadedEmployees"`
	Version           int64              `json:"version"`
	AuditFields
}

// StructurallyLocked reports whether position/shift/block structure may not be
// mutated. Published non-template schedules are live rosters and are locked;
// templates are reusable blueprints and never lock.
func (s *Schedule) StructurallyLocked() bool {
	return s.Status == StatusPublished && !s.IsTemplate
}

// Day returns the day at the given index (0 = week start).
func (s *Schedule) Day(index int) (*Day, error) {
	if index < 0 || index >= len(s.Days) {
		return nil, fmt.Errorf("day index %d out of range", index)
	}
	return &s.Days[index], nil
}

// Validate enforces the aggregate's structural invariants.
func (s *Schedule) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("schedule has no name")
	}
	if s.StoreID == "" {
		return fmt.Errorf("schedule %q has no store", s.Name)
	}
	if !s.Status.Valid() {
		return fmt.Errorf("schedule %q has invalid status %q", s.Name, s.Status)
	}
	if s.SchemaVersion != 1 && s.SchemaVersion != 2 {
		return fmt.Errorf("schedule %q has invalid schema version %d", s.Name, s.SchemaVersion)
	}
	if len(s.Days) != DaysPerWeek {
		return fmt.Errorf("schedule %q has %d days, want %d", s.Name, len(s.Days), DaysPerWeek)
	}
	if s.WeekEndDate.Before(s.WeekStartDate) {
		return fmt.Errorf("schedule %q week ends before it starts", s.Name)
	}
	start := truncateToDate(s.WeekStartDate)
	end := truncateToDate(s.WeekEndDate)
	for i := range s.Days {
		d := truncateToDate(s.Days[i].Date)
		if d.Before(start) || d.After(end) {
			return fmt.Errorf("schedule %q day %d (%s) falls outside the week bounds", s.Name, i, d.Format("2006-01-02"))
		}
		if err := s.Days[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of the schedule. Later mutations of the copy never
// reach the source.
func (s *Schedule) Clone() Schedule {
	out := *s
	out.Days = make([]Day, len(s.Days))
	for i, d := range s.Days {
		out.Days[i] = d.Clone()
	}
	if s.UploadedEmployees != nil {
		out.UploadedEmployees = make([]UploadedEmployee, len(s.UploadedEmployees))
		copy(out.UploadedEmployees, s.UploadedEmployees)
	}
	return out
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
