package services

import (
	"context"
	"fmt"
	"time"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
	"hospital-management/internal/domain/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MedicalRecordServiceImpl implements MedicalRecordServiceContract.
type MedicalRecordServiceImpl struct {
	medicalRecordRepo repositories.MedicalRecordRepositoryContract
	logger            *zap.Logger
	newID             func() string
	now               func() time.Time
}

// NewMedicalRecordService creates a new instance of MedicalRecordServiceImpl.
func NewMedicalRecordService(repo repositories.MedicalRecordRepositoryContract, logger *zap.Logger) MedicalRecordServiceContract {
	return &MedicalRecordServiceImpl{
		medicalRecordRepo: repo,
		logger:            logger,
		newID:             uuid.NewString,
		now:               time.Now,
	}
}

func (s *MedicalRecordServiceImpl) SaveRecord(ctx context.Context, req dtos.SaveMedicalRecordRequest) (string, error) {
	record := &entities.MedicalRecord{
		RecordID:  s.newID(),
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      s.now().Format(dateLayout),
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Notes:     req.Notes,
	}

	prescriptions := make([]*entities.Prescription, 0, len(req.Prescriptions))
	for _, line := range req.Prescriptions {
		if line.MedicineName == "" {
			continue
		}
		prescriptions = append(prescriptions, &entities.Prescription{
			PrescriptionID: s.newID(),
			RecordID:       record.RecordID,
			MedicineName:   line.MedicineName,
			Dosage:         line.Dosage,
			Frequency:      line.Frequency,
			Duration:       line.Duration,
		})
	}

	if err := s.medicalRecordRepo.CreateWithPrescriptions(ctx, record, prescriptions); err != nil {
		s.logger.Error("failed to save medical record",
			zap.String("patient_id", req.PatientID),
			zap.Error(err))
		return "", fmt.Errorf("save medical record: %w", err)
	}

	s.logger.Info("medical record saved",
		zap.String("record_id", record.RecordID),
		zap.String("patient_id", record.PatientID),
		zap.Int("prescriptions", len(prescriptions)))
	return record.RecordID, nil
}

func (s *MedicalRecordServiceImpl) History(ctx context.Context, patientID string) ([]dtos.MedicalHistoryRow, error) {
	rows, err := s.medicalRecordRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("medical history of patient %s: %w", patientID, err)
	}
	return rows, nil
}

func (s *MedicalRecordServiceImpl) Detail(ctx context.Context, patientID, date string) (*dtos.MedicalRecordDetail, error) {
	detail, err := s.medicalRecordRepo.FindDetail(ctx, patientID, date)
	if err != nil {
		return nil, fmt.Errorf("medical record of patient %s on %s: %w", patientID, date, err)
	}
	return detail, nil
}

func (s *MedicalRecordServiceImpl) Prescriptions(ctx context.Context, recordID string) ([]*entities.Prescription, error) {
	prescriptions, err := s.medicalRecordRepo.ListPrescriptions(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("prescriptions of record %s: %w", recordID, err)
	}
	return prescriptions, nil
}
