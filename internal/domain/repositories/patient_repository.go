package repositories

import (
	"context"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"

	"gorm.io/gorm"
)

// PatientRepository stores patients in the patients table.
type PatientRepository struct {
	db *gorm.DB
}

var _ PatientRepositoryContract = (*PatientRepository)(nil)

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, patient *entities.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*entities.Patient, error) {
	var patient entities.Patient
	if err := r.db.WithContext(ctx).Where("patient_id = ?", id).Take(&patient).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &patient, nil
}

// ListAll returns every patient in storage order.
func (r *PatientRepository) ListAll(ctx context.Context) ([]*entities.Patient, error) {
	var patients []*entities.Patient
	if err := r.db.WithContext(ctx).Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *PatientRepository) Search(ctx context.Context, field dtos.SearchField, term string) ([]*entities.Patient, error) {
	column, err := searchColumn(field, "patient_id")
	if err != nil {
		return nil, err
	}
	var patients []*entities.Patient
	if err := r.db.WithContext(ctx).Where(column+" LIKE ?", containsPattern(term)).Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}
