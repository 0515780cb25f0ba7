package repositories

import (
	"context"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
)

type AppointmentRepositoryContract interface {
	Create(ctx context.Context, appointment *entities.Appointment) error
	ListJoined(ctx context.Context) ([]dtos.AppointmentRow, error)
	FindByPatientID(ctx context.Context, patientID string) ([]*entities.Appointment, error)
}
