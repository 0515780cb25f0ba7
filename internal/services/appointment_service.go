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

type AppointmentServiceImpl struct {
	appointmentRepo repositories.AppointmentRepositoryContract
	logger          *zap.Logger
	newID           func() string
}

func NewAppointmentService(repo repositories.AppointmentRepositoryContract, logger *zap.Logger) AppointmentServiceContract {
	return &AppointmentServiceImpl{
		appointmentRepo: repo,
		logger:          logger,
		newID:           uuid.NewString,
	}
}

func (s *AppointmentServiceImpl) Book(ctx context.Context, req dtos.BookAppointmentRequest) (string, error) {
	appointment := &entities.Appointment{
		AppointmentID: s.newID(),
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		Date:          req.Date,
		Time:          req.Time,
		Status:        entities.AppointmentStatusScheduled,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		s.logger.Error("failed to book appointment",
			zap.String("patient_id", req.PatientID),
			zap.String("doctor_id", req.DoctorID),
			zap.Error(err))
		return "", fmt.Errorf("book appointment: %w", err)
	}
	s.logger.Info("appointment booked",
		zap.String("appointment_id", appointment.AppointmentID),
		zap.String("patient_id", req.PatientID),
		zap.String("doctor_id", req.DoctorID))
	return appointment.AppointmentID, nil
}

func (s *AppointmentServiceImpl) List(ctx context.Context) ([]dtos.AppointmentRow, error) {
	rows, err := s.appointmentRepo.ListJoined(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return rows, nil
}

func (s *AppointmentServiceImpl) ListForPatient(ctx context.Context, patientID string) ([]*entities.Appointment, error) {
	appointments, err := s.appointmentRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list appointments of patient %s: %w", patientID, err)
	}
	return appointments, nil
}
