package dto

// ImportResult summarizes one spreadsheet import. Skipped counts rows dropped
// for missing fields or unparsable times; the import as a whole succeeds as
// long as at least one row was usable.
type ImportResult struct {
	ScheduleID string `json:"scheduleID"`
	Imported   int    `json:"imported"`
	Skipped    int    `json:"skipped"`
	Assigned   int    `json:"assigned"`
	Unplaced   int    `json:"unplaced"`
}
