package repositories

import (
	"context"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
)

type MedicalRecordRepositoryContract interface {
	// CreateWithPrescriptions stores the record and its prescriptions as one unit.
	CreateWithPrescriptions(ctx context.Context, record *entities.MedicalRecord, prescriptions []*entities.Prescription) error
	FindByPatientID(ctx context.Context, patientID string) ([]dtos.MedicalHistoryRow, error)
	FindDetail(ctx context.Context, patientID, date string) (*dtos.MedicalRecordDetail, error)
	ListPrescriptions(ctx context.Context, recordID string) ([]*entities.Prescription, error)
}
