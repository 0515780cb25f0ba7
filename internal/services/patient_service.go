package services

import (
	"context"
	"fmt"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
	"hospital-management/internal/domain/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PatientServiceImpl implements PatientServiceContract.
type PatientServiceImpl struct {
	patientRepo repositories.PatientRepositoryContract
	logger      *zap.Logger
	newID       func() string
}

// NewPatientService creates a new instance of PatientServiceImpl.
func NewPatientService(repo repositories.PatientRepositoryContract, logger *zap.Logger) PatientServiceContract {
	return &PatientServiceImpl{
		patientRepo: repo,
		logger:      logger,
		newID:       uuid.NewString,
	}
}

func (s *PatientServiceImpl) Register(ctx context.Context, req dtos.RegisterPatientRequest) (string, error) {
	patient := &entities.Patient{
		PatientID:  s.newID(),
		Name:       req.Name,
		Age:        req.Age,
		Gender:     req.Gender,
		Phone:      req.Phone,
		Address:    req.Address,
		BloodGroup: req.BloodGroup,
	}
	if err := s.patientRepo.Create(ctx, patient); err != nil {
		s.logger.Error("failed to register patient", zap.Error(err))
		return "", fmt.Errorf("register patient: %w", err)
	}
	s.logger.Info("patient registered", zap.String("patient_id", patient.PatientID))
	return patient.PatientID, nil
}

func (s *PatientServiceImpl) List(ctx context.Context) ([]*entities.Patient, error) {
	patients, err := s.patientRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (s *PatientServiceImpl) Search(ctx context.Context, field dtos.SearchField, term string) ([]*entities.Patient, error) {
	if !field.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSearchField, field)
	}
	patients, err := s.patientRepo.Search(ctx, field, term)
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	return patients, nil
}

func (s *PatientServiceImpl) Get(ctx context.Context, id string) (*entities.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("patient %s: %w", id, err)
	}
	return patient, nil
}
