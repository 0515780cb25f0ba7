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

type DoctorServiceImpl struct {
	doctorRepo repositories.DoctorRepositoryContract
	logger     *zap.Logger
	newID      func() string
}

func NewDoctorService(repo repositories.DoctorRepositoryContract, logger *zap.Logger) DoctorServiceContract {
	return &DoctorServiceImpl{
		doctorRepo: repo,
		logger:     logger,
		newID:      uuid.NewString,
	}
}

func (s *DoctorServiceImpl) Register(ctx context.Context, req dtos.RegisterDoctorRequest) (string, error) {
	doctor := &entities.Doctor{
		DoctorID:       s.newID(),
		Name:           req.Name,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		Email:          req.Email,
	}
	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		s.logger.Error("failed to register doctor", zap.Error(err))
		return "", fmt.Errorf("register doctor: %w", err)
	}
	s.logger.Info("doctor registered", zap.String("doctor_id", doctor.DoctorID))
	return doctor.DoctorID, nil
}

func (s *DoctorServiceImpl) List(ctx context.Context) ([]*entities.Doctor, error) {
	doctors, err := s.doctorRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (s *DoctorServiceImpl) Search(ctx context.Context, field dtos.SearchField, term string) ([]*entities.Doctor, error) {
	if !field.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSearchField, field)
	}
	doctors, err := s.doctorRepo.Search(ctx, field, term)
	if err != nil {
		return nil, fmt.Errorf("search doctors: %w", err)
	}
	return doctors, nil
}
