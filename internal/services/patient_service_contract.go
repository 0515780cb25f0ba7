package services

import (
	"context"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
)

// PatientServiceContract defines the operations on patients.
type PatientServiceContract interface {
	// Register stores a new patient and returns its generated identifier.
	// No field is validated.
	Register(ctx context.Context, req dtos.RegisterPatientRequest) (string, error)
	// List returns every patient in storage order.
	List(ctx context.Context) ([]*entities.Patient, error)
	// Search returns the patients whose id or name contains term.
	Search(ctx context.Context, field dtos.SearchField, term string) ([]*entities.Patient, error)
	// Get returns one patient or ErrNotFound.
	Get(ctx context.Context, id string) (*entities.Patient, error)
}
