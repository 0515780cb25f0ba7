package repositories

import (
	"context"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
)

type PatientRepositoryContract interface {
	Create(ctx context.Context, patient *entities.Patient) error
	GetByID(ctx context.Context, id string) (*entities.Patient, error)
	ListAll(ctx context.Context) ([]*entities.Patient, error)
	Search(ctx context.Context, field dtos.SearchField, term string) ([]*entities.Patient, error)
}
