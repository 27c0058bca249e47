// Package export renders patient listings as Excel workbooks.
package export

import (
	"bytes"
	"fmt"
	"os"

	"trauma-registry/internal/domain"
	"trauma-registry/internal/rut"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Patients"

// ReportHeader is the column layout of the patient report.
var ReportHeader = []string{
	"RUT",
	"Name",
	"Injury Code",
	"Injury Name",
	"Diagnosis",
	"Surgery Date",
	"Delay (days)",
	"Surgery Type",
	"Recovery Status",
}

var columnWidths = []float64{
	14, // RUT
	28, // Name
	12, // Injury Code
	40, // Injury Name
	40, // Diagnosis
	14, // Surgery Date
	12, // Delay (days)
	20, // Surgery Type
	16, // Recovery Status
}

// placeholder stands in for fields a record does not carry (no injury,
// no surgery date yet).
const placeholder = "N/A"

// ExcelReport builds the patient report workbook and returns its bytes.
// An empty patient list yields a workbook with only the header row.
func ExcelReport(patients []*domain.Patient) ([]byte, error) {
	f := excelize.NewFile()
	// Note: don't defer Close() here, WriteTo needs the file open.

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#808080"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for col, header := range ReportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("set header style: %w", err)
		}
	}

	for col, width := range columnWidths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	for i, p := range patients {
		row := i + 2 // row 1 is the header

		injuryCode, injuryName, diagnosis := placeholder, placeholder, placeholder
		if p.Injury != nil {
			injuryCode = p.Injury.OfficialCode
			injuryName = p.Injury.Name
			diagnosis = p.Injury.Diagnosis
		}
		surgeryDate := placeholder
		if p.SurgeryDate != nil {
			surgeryDate = p.SurgeryDate.String()
		}
		status := "Active"
		if p.Recovered {
			status = "Recovered"
		}

		values := []any{
			rut.Format(p.RUT),
			p.Name,
			injuryCode,
			injuryName,
			diagnosis,
			surgeryDate,
			p.SurgeryDelayDays,
			p.SurgeryType,
			status,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				f.Close()
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the report and writes it to path, appending the .xlsx
// extension when missing.
func WriteFile(path string, patients []*domain.Patient) (string, error) {
	if len(path) < 5 || path[len(path)-5:] != ".xlsx" {
		path += ".xlsx"
	}
	data, err := ExcelReport(patients)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	return path, nil
}
