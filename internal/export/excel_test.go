package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"trauma-registry/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func reportPatients() []*domain.Patient {
	surgery := domain.NewDate(2024, time.June, 10)
	return []*domain.Patient{
		{
			ID:        "p1",
			Name:      "Ana Morales",
			Age:       42,
			RUT:       "12345678-5",
			Dominance: domain.DominanceRight,
			Injury: &domain.Injury{
				Name:         "TENORRAFIA EXTENSORES MANO",
				OfficialCode: "21 04 107",
				Diagnosis:    "Sección tendinosa zona VI",
			},
			SurgeryDelayDays: 14,
			SurgeryDate:      &surgery,
			SurgeryType:      "Primaria",
			Recovered:        true,
		},
		{
			ID:        "p2",
			Name:      "Carla Díaz",
			Age:       28,
			RUT:       "12345670-K",
			Dominance: domain.DominanceAmbidextrous,
			// No injury and no surgery date: placeholders in the report.
		},
	}
}

func TestExcelReport(t *testing.T) {
	data, err := ExcelReport(reportPatients())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), sheetName)

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two patients

	assert.Equal(t, ReportHeader, rows[0])

	// First data row: formatted RUT and full injury data.
	assert.Equal(t, "12.345.678-5", rows[1][0])
	assert.Equal(t, "Ana Morales", rows[1][1])
	assert.Equal(t, "21 04 107", rows[1][2])
	assert.Equal(t, "2024-06-10", rows[1][5])
	assert.Equal(t, "14", rows[1][6])
	assert.Equal(t, "Recovered", rows[1][8])

	// Second data row: placeholders where the record carries no data.
	assert.Equal(t, "12.345.670-K", rows[2][0])
	assert.Equal(t, "N/A", rows[2][2])
	assert.Equal(t, "N/A", rows[2][3])
	assert.Equal(t, "N/A", rows[2][5])
	assert.Equal(t, "Active", rows[2][8])
}

func TestExcelReport_Empty(t *testing.T) {
	data, err := ExcelReport(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, ReportHeader, rows[0])
}

func TestWriteFile_AppendsExtension(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(filepath.Join(dir, "report"), reportPatients())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.xlsx"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
