package domain

import (
	"fmt"
	"strings"
)

// Department is the closed set of department tags shared by positions, the
// default-position catalog, and the spreadsheet importer. Legacy vocabularies
// ("FOH", "FC", "BOH") are accepted on input only, via ParseDepartment.
type Department string

const (
	DeptFrontCounter Department = "FRONT_COUNTER"
	DeptDriveThru    Department = "DRIVE_THRU"
	DeptKitchen      Department = "KITCHEN"
)

// Valid reports whether d is one of the closed department values.
func (d Department) Valid() bool {
	switch d {
	case DeptFrontCounter, DeptDriveThru, DeptKitchen:
		return true
	}
	return false
}

// DisplayName returns the human-readable department name.
func (d Department) DisplayName() string {
	switch d {
	case DeptFrontCounter:
		return "Front Counter"
	case DeptDriveThru:
		return "Drive-Thru"
	case DeptKitchen:
		return "Kitchen"
	}
	return string(d)
}

// ParseDepartment normalizes a raw department string, including the legacy
// vocabularies observed in roster exports, into the closed enum.
func ParseDepartment(raw string) (Department, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)

	switch key {
	case "frontcounter", "fc", "foh", "frontofhouse", "front":
		return DeptFrontCounter, nil
	case "drivethru", "drivethrough", "dt":
		return DeptDriveThru, nil
	case "kitchen", "boh", "backofhouse", "back":
		return DeptKitchen, nil
	}
	return "", fmt.Errorf("unknown department %q", raw)
}
