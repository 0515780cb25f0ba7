package services

import (
	"context"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
)

// DoctorServiceContract defines the operations on doctors.
type DoctorServiceContract interface {
	Register(ctx context.Context, req dtos.RegisterDoctorRequest) (string, error)
	List(ctx context.Context) ([]*entities.Doctor, error)
	Search(ctx context.Context, field dtos.SearchField, term string) ([]*entities.Doctor, error)
}
