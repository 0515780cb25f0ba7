package services

import (
	"context"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
)

// MedicalRecordServiceContract defines the operations on medical records and
// their prescriptions.
type MedicalRecordServiceContract interface {
	// SaveRecord stores a record dated today together with one prescription per
	// line that has a medicine name. Nothing is stored when any write fails.
	SaveRecord(ctx context.Context, req dtos.SaveMedicalRecordRequest) (string, error)
	// History returns the patient's records, newest date first. Records whose
	// doctor does not exist are left out.
	History(ctx context.Context, patientID string) ([]dtos.MedicalHistoryRow, error)
	// Detail returns one record of the patient on date with at most one of its
	// prescriptions, or ErrNotFound.
	Detail(ctx context.Context, patientID, date string) (*dtos.MedicalRecordDetail, error)
	// Prescriptions returns every prescription of a record.
	Prescriptions(ctx context.Context, recordID string) ([]*entities.Prescription, error)
}
