package repositories

import (
	"context"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"

	"gorm.io/gorm"
)

// DoctorRepository stores doctors in the doctors table.
type DoctorRepository struct {
	db *gorm.DB
}

var _ DoctorRepositoryContract = (*DoctorRepository)(nil)

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *entities.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *DoctorRepository) ListAll(ctx context.Context) ([]*entities.Doctor, error) {
	var doctors []*entities.Doctor
	if err := r.db.WithContext(ctx).Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *DoctorRepository) Search(ctx context.Context, field dtos.SearchField, term string) ([]*entities.Doctor, error) {
	column, err := searchColumn(field, "doctor_id")
	if err != nil {
		return nil, err
	}
	var doctors []*entities.Doctor
	if err := r.db.WithContext(ctx).Where(column+" LIKE ?", containsPattern(term)).Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}
