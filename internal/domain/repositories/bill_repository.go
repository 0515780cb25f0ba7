package repositories

import (
	"context"

	"hospital-management/internal/domain/entities"

	"gorm.io/gorm"
)

type BillRepository struct {
	db *gorm.DB
}

var _ BillRepositoryContract = (*BillRepository)(nil)

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{db: db}
}

func (r *BillRepository) Create(ctx context.Context, bill *entities.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

// FindByPatientID returns the patient's bills, newest date first.
func (r *BillRepository) FindByPatientID(ctx context.Context, patientID string) ([]*entities.Bill, error) {
	var bills []*entities.Bill
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date DESC").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}
