package spreadsheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadRows_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	content := "Name,Day,Shift Time,Department\nCasey L,Monday,5:00a - 2:00p,FC\nJordan P,Tuesday,11:00a - 8:00p,Kitchen\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rows, err := ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Day", "Shift Time", "Department"}, rows[0])
	assert.Equal(t, "Casey L", rows[1][0])
}

func TestReadRows_CSV_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o600))

	_, err := ReadRows(path)
	assert.Error(t, err)
}

func TestReadRows_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Employee", "Workday", "Time", "Dept"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Casey L", "Monday", "5:00a - 2:00p", "FC"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Casey L", rows[1][0])
}

func TestHeaderIndex(t *testing.T) {
	headers := []string{"Employee Name", "Workday", " Shift Time ", "Dept"}

	assert.Equal(t, 0, HeaderIndex(headers, "Name", "Employee", "EmployeeName"))
	assert.Equal(t, 1, HeaderIndex(headers, "Day", "Workday"))
	assert.Equal(t, 2, HeaderIndex(headers, "ShiftTime", "Shift Time", "Time"))
	assert.Equal(t, 3, HeaderIndex(headers, "Department", "Dept"))
	assert.Equal(t, -1, HeaderIndex(headers, "Store"))
}

func TestCell(t *testing.T) {
	row := []string{" Casey L ", "Monday"}
	assert.Equal(t, "Casey L", Cell(row, 0))
	assert.Equal(t, "", Cell(row, 5))
	assert.Equal(t, "", Cell(row, -1))
}
