package services

import (
	"context"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
)

// AppointmentServiceContract defines the booking operations.
type AppointmentServiceContract interface {
	// Book stores an appointment with status Scheduled. The patient and doctor
	// ids are not checked.
	Book(ctx context.Context, req dtos.BookAppointmentRequest) (string, error)
	// List returns appointments joined with patient and doctor names; rows whose
	// patient or doctor does not exist are left out.
	List(ctx context.Context) ([]dtos.AppointmentRow, error)
	ListForPatient(ctx context.Context, patientID string) ([]*entities.Appointment, error)
}
