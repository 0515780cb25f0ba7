package repositories

import (
	"context"

	"hospital-management/internal/domain/entities"
)

type BillRepositoryContract interface {
	Create(ctx context.Context, bill *entities.Bill) error
	FindByPatientID(ctx context.Context, patientID string) ([]*entities.Bill, error)
}
