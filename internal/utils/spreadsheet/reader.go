// Package spreadsheet reads tabular roster exports (.xlsx, .xls, .csv) into
// plain string rows and resolves flexibly-named header columns.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// maxXLSRows bounds legacy .xls reads; roster exports are far smaller.
const maxXLSRows = 100000

// ReadRows loads every cell of the first worksheet (or the whole CSV) as
// strings. The first row is expected to be a header row, but that is the
// caller's concern; ReadRows only guarantees a non-empty result.
func ReadRows(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(data)
	case ".xls":
		return readXLS(data)
	default:
		return readXLSX(data)
	}
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // exports pad rows inconsistently
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv file is empty")
	}
	return rows, nil
}

func readXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls workbook: %w", err)
	}
	if workbook.NumSheets() == 0 {
		return nil, fmt.Errorf("no worksheet found")
	}
	rows := workbook.ReadAllCells(maxXLSRows)
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}
	return rows, nil
}

func readXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}
	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}
	return rows, nil
}

// HeaderIndex returns the index of the first header matching any of the given
// aliases (checked in order, case- and spacing-insensitive), or -1.
func HeaderIndex(headers []string, aliases ...string) int {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}
	for _, alias := range aliases {
		want := normalizeHeader(alias)
		for i, h := range normalized {
			if h == want {
				return i
			}
		}
	}
	return -1
}

// Cell returns the trimmed cell at idx, or "" when the row is too short.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func normalizeHeader(header string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header)), " ", "")
}
