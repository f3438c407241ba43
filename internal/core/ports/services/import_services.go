package services

import (
	"context"

	"github.com/ShiftWise/shiftwise_app/internal/dto"
)

// ImportSvcFacade ingests third-party roster spreadsheets into a schedule.
type ImportSvcFacade interface {
	// ImportSpreadsheet parses the uploaded file at filePath (.xlsx/.xls/.csv,
	// dispatched on originalName's extension), records every usable row
	// verbatim on the schedule, and auto-assigns employees to open positions.
	// Unusable rows are skipped and counted, never fatal. The caller owns the
	// temporary file and must remove it on every path.
	ImportSpreadsheet(ctx context.Context, storeID string, scheduleID string, filePath string, originalName string, userID string) (*dto.ImportResult, error)
}
