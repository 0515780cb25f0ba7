package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hospital-management/internal/domain/repositories"
	"hospital-management/internal/fhir/mappers"
	"hospital-management/internal/reports"

	"go.uber.org/zap"
)

// ExportServiceImpl implements ExportServiceContract on top of the record
// repositories.
type ExportServiceImpl struct {
	patientRepo     repositories.PatientRepositoryContract
	doctorRepo      repositories.DoctorRepositoryContract
	appointmentRepo repositories.AppointmentRepositoryContract
	billRepo        repositories.BillRepositoryContract
	logger          *zap.Logger
	now             func() time.Time
}

func NewExportService(
	patientRepo repositories.PatientRepositoryContract,
	doctorRepo repositories.DoctorRepositoryContract,
	appointmentRepo repositories.AppointmentRepositoryContract,
	billRepo repositories.BillRepositoryContract,
	logger *zap.Logger,
) ExportServiceContract {
	return &ExportServiceImpl{
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		billRepo:        billRepo,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *ExportServiceImpl) PatientBundle(ctx context.Context, patientID string) (json.RawMessage, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("patient %s: %w", patientID, err)
	}
	appointments, err := s.appointmentRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("appointments of patient %s: %w", patientID, err)
	}

	bundle, err := mappers.MapPatientBundle(*patient, appointments, s.now())
	if err != nil {
		s.logger.Error("failed to map patient to FHIR", zap.String("patient_id", patientID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("patient exported as FHIR bundle",
		zap.String("patient_id", patientID),
		zap.Int("appointments", len(appointments)))
	return bundle, nil
}

func (s *ExportServiceImpl) RegistryWorkbook(ctx context.Context) ([]byte, error) {
	patients, err := s.patientRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	doctors, err := s.doctorRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	data, err := reports.GenerateRegistryWorkbook(patients, doctors)
	if err != nil {
		return nil, err
	}
	s.logger.Info("registry workbook generated",
		zap.Int("patients", len(patients)),
		zap.Int("doctors", len(doctors)))
	return data, nil
}

func (s *ExportServiceImpl) BillStatement(ctx context.Context, patientID string) ([]byte, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("patient %s: %w", patientID, err)
	}
	bills, err := s.billRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("bills of patient %s: %w", patientID, err)
	}
	data, err := reports.GenerateBillStatement(*patient, bills, s.now())
	if err != nil {
		return nil, err
	}
	s.logger.Info("bill statement generated", zap.String("patient_id", patientID), zap.Int("bills", len(bills)))
	return data, nil
}
