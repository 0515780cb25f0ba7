package services

import (
	"context"
	"encoding/json"
)

// ExportServiceContract produces documents built from stored records.
type ExportServiceContract interface {
	// PatientBundle returns a FHIR collection Bundle of the patient and its
	// appointments.
	PatientBundle(ctx context.Context, patientID string) (json.RawMessage, error)
	// RegistryWorkbook returns an .xlsx file listing every patient and doctor.
	RegistryWorkbook(ctx context.Context) ([]byte, error)
	// BillStatement returns a PDF of the patient's bills.
	BillStatement(ctx context.Context, patientID string) ([]byte, error)
}
