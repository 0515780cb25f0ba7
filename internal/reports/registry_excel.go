// Package reports renders stored records as downloadable documents.
package reports

import (
	"bytes"
	"fmt"

	"hospital-management/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const (
	PatientsSheet = "Patients"
	DoctorsSheet  = "Doctors"
)

var PatientRegistryHeader = []string{"Patient ID", "Name", "Age", "Gender", "Phone", "Address", "Blood Group"}

var DoctorRegistryHeader = []string{"Doctor ID", "Name", "Specialization", "Phone", "Email"}

// GenerateRegistryWorkbook builds an .xlsx file with one sheet of patients and
// one sheet of doctors, rows in the order given.
func GenerateRegistryWorkbook(patients []*entities.Patient, doctors []*entities.Doctor) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	patientRows := make([][]any, 0, len(patients))
	for _, p := range patients {
		patientRows = append(patientRows, []any{p.PatientID, p.Name, p.Age, p.Gender, p.Phone, p.Address, p.BloodGroup})
	}
	doctorRows := make([][]any, 0, len(doctors))
	for _, d := range doctors {
		doctorRows = append(doctorRows, []any{d.DoctorID, d.Name, d.Specialization, d.Phone, d.Email})
	}

	index, err := writeSheet(f, PatientsSheet, PatientRegistryHeader, patientRows, headerStyle)
	if err != nil {
		return nil, err
	}
	if _, err := writeSheet(f, DoctorsSheet, DoctorRegistryHeader, doctorRows, headerStyle); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any, headerStyle int) (int, error) {
	index, err := f.NewSheet(sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return 0, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return 0, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return 0, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return 0, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return 0, fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return 0, fmt.Errorf("failed to convert column: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return 0, fmt.Errorf("failed to set column width: %w", err)
	}
	return index, nil
}
