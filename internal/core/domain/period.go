package domain

import (
	"fmt"

	"github.com/ShiftWise/shiftwise_app/internal/utils/clocktime"
)

// LaborPeriod identifies one of the six canonical, store-wide labor periods used
// by legacy fixed scheduling (schema version 1).
type LaborPeriod string

const (
	PeriodOpening   LaborPeriod = "Opening"
	PeriodMorning   LaborPeriod = "Morning"
	PeriodLunch     LaborPeriod = "Lunch"
	PeriodAfternoon LaborPeriod = "Afternoon"
	PeriodDinner    LaborPeriod = "Dinner"
	PeriodClosing   LaborPeriod = "Closing"
)

// PeriodWindow pairs a labor period with its fixed clock boundaries.
type PeriodWindow struct {
	Period    LaborPeriod `json:"period"`
	StartTime string      `json:"startTime"` // "HH:MM", 24-hour
	EndTime   string      `json:"endTime"`
}

// periodWindows is the canonical taxonomy, in chronological order. The boundaries
// are store-wide constants; every index-based period reference in the system
// refers to a position in this slice.
var periodWindows = [6]PeriodWindow{
	{Period: PeriodOpening, StartTime: "05:00", EndTime: "08:00"},
	{Period: PeriodMorning, StartTime: "08:00", EndTime: "11:00"},
	{Period: PeriodLunch, StartTime: "11:00", EndTime: "14:00"},
	{Period: PeriodAfternoon, StartTime: "14:00", EndTime: "17:00"},
	{Period: PeriodDinner, StartTime: "17:00", EndTime: "20:00"},
	{Period: PeriodClosing, StartTime: "20:00", EndTime: "23:00"},
}

// PeriodWindows returns the six canonical labor periods in chronological order.
func PeriodWindows() []PeriodWindow {
	out := make([]PeriodWindow, len(periodWindows))
	copy(out, periodWindows[:])
	return out
}

// PeriodCount is the number of canonical labor periods in a fixed-period day.
const PeriodCount = len(periodWindows)

// PeriodByIndex returns the canonical window at the given index (0 = Opening).
func PeriodByIndex(index int) (PeriodWindow, error) {
	if index < 0 || index >= PeriodCount {
		return PeriodWindow{}, fmt.Errorf("labor period index %d out of range", index)
	}
	return periodWindows[index], nil
}

// Window returns the clock boundaries for the period.
func (p LaborPeriod) Window() (PeriodWindow, bool) {
	for _, w := range periodWindows {
		if w.Period == p {
			return w, true
		}
	}
	return PeriodWindow{}, false
}

// Index returns the chronological index of the period, or -1 if unknown.
func (p LaborPeriod) Index() int {
	for i, w := range periodWindows {
		if w.Period == p {
			return i
		}
	}
	return -1
}

// Valid reports whether p names a canonical labor period.
func (p LaborPeriod) Valid() bool {
	return p.Index() >= 0
}

// OverlappingPeriods returns the indices of every canonical labor period that has
// a non-empty time overlap with the given 24-hour clock interval. An employee
// whose hours span three periods is available in all three.
func OverlappingPeriods(startTime, endTime string) []int {
	var indices []int
	for i, w := range periodWindows {
		if clocktime.Overlaps(startTime, endTime, w.StartTime, w.EndTime) {
			indices = append(indices, i)
		}
	}
	return indices
}
