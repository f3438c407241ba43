package services

import (
	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
)

// rosterCandidate is one imported spreadsheet row reduced to its placement
// facts. UserID is set when the row's name resolved against the directory,
// Department is empty when the row's department cell did not parse (such
// candidates are never auto-placed), and DayIndex is -1 when the day cell did
// not resolve to a day of the week.
type rosterCandidate struct {
	Name       string
	UserID     string
	Department domain.Department
	StartTime  string
	EndTime    string
	DayIndex   int
}

func (c *rosterCandidate) employeeRef() *domain.EmployeeRef {
	if c.UserID != "" {
		return domain.KnownEmployee(c.UserID)
	}
	return domain.NamedEmployee(c.Name)
}

// autoAssign places candidates into open positions first-fit: candidates in
// input order, labor periods in canonical order, positions in slot order. A
// candidate is offered one placement per labor period their hours overlap, so
// an employee working across three periods can fill an open position in each
// of the three. The walk is deterministic, so re-running the same import
// against the same schedule places the same people.
//
// The returned counts are per availability record (candidate x overlapped
// period), not per candidate.
func autoAssign(sched *domain.Schedule, candidates []rosterCandidate) (assigned, unplaced int) {
	for i := range candidates {
		a, u := placeCandidate(sched, &candidates[i])
		assigned += a
		unplaced += u
	}
	return assigned, unplaced
}

// placeCandidate attempts one placement per labor period the candidate's hours
// overlap and reports how many succeeded and how many found no open position.
func placeCandidate(sched *domain.Schedule, c *rosterCandidate) (assigned, unplaced int) {
	periods := domain.OverlappingPeriods(c.StartTime, c.EndTime)
	if c.DayIndex < 0 || c.DayIndex >= len(sched.Days) {
		return 0, len(periods)
	}
	day := &sched.Days[c.DayIndex]

	for _, periodIndex := range periods {
		if placeInPeriod(day, periodIndex, c) {
			assigned++
		} else {
			unplaced++
		}
	}
	return assigned, unplaced
}

func placeInPeriod(day *domain.Day, periodIndex int, c *rosterCandidate) bool {
	if shift, err := day.ShiftByPeriodIndex(periodIndex); err == nil {
		if takePosition(shift.Positions, c) {
			return true
		}
	}
	for _, block := range day.BlocksOverlappingPeriod(periodIndex) {
		if takePosition(block.Positions, c) {
			return true
		}
	}
	return false
}

func takePosition(positions []domain.Position, c *rosterCandidate) bool {
	for i := range positions {
		pos := &positions[i]
		if pos.Status != domain.PositionUnassigned {
			continue
		}
		if pos.Department != c.Department {
			continue
		}
		if err := pos.Assign(c.employeeRef()); err != nil {
			continue
		}
		return true
	}
	return false
}
