package repositories

import (
	"context"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
)

type DoctorRepositoryContract interface {
	Create(ctx context.Context, doctor *entities.Doctor) error
	ListAll(ctx context.Context) ([]*entities.Doctor, error)
	Search(ctx context.Context, field dtos.SearchField, term string) ([]*entities.Doctor, error)
}
