package repositories

import (
	"context"
	"fmt"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"

	"gorm.io/gorm"
)

const medicalHistoryQuery = `
	SELECT m.record_id, m.date, d.name AS doctor_name, m.diagnosis, m.treatment
	FROM medical_records m
	JOIN doctors d ON m.doctor_id = d.doctor_id
	WHERE m.patient_id = ?
	ORDER BY m.date DESC`

// A record with several prescriptions fans out into several rows; only the first
// one is read.
const medicalRecordDetailQuery = `
	SELECT m.record_id, m.patient_id, m.doctor_id, m.date, m.diagnosis, m.treatment, m.notes,
	       d.name AS doctor_name,
	       p.medicine_name, p.dosage, p.frequency, p.duration
	FROM medical_records m
	JOIN doctors d ON m.doctor_id = d.doctor_id
	LEFT JOIN prescriptions p ON m.record_id = p.record_id
	WHERE m.patient_id = ? AND m.date = ?
	LIMIT 1`

type MedicalRecordRepository struct {
	db *gorm.DB
}

var _ MedicalRecordRepositoryContract = (*MedicalRecordRepository)(nil)

func NewMedicalRecordRepository(db *gorm.DB) *MedicalRecordRepository {
	return &MedicalRecordRepository{db: db}
}

func (r *MedicalRecordRepository) CreateWithPrescriptions(ctx context.Context, record *entities.MedicalRecord, prescriptions []*entities.Prescription) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("insert medical record %s: %w", record.RecordID, err)
		}
		for _, p := range prescriptions {
			if err := tx.Create(p).Error; err != nil {
				return fmt.Errorf("insert prescription %s: %w", p.PrescriptionID, err)
			}
		}
		return nil
	})
}

func (r *MedicalRecordRepository) FindByPatientID(ctx context.Context, patientID string) ([]dtos.MedicalHistoryRow, error) {
	var rows []dtos.MedicalHistoryRow
	if err := r.db.WithContext(ctx).Raw(medicalHistoryQuery, patientID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MedicalRecordRepository) FindDetail(ctx context.Context, patientID, date string) (*dtos.MedicalRecordDetail, error) {
	var detail dtos.MedicalRecordDetail
	res := r.db.WithContext(ctx).Raw(medicalRecordDetailQuery, patientID, date).Scan(&detail)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &detail, nil
}

func (r *MedicalRecordRepository) ListPrescriptions(ctx context.Context, recordID string) ([]*entities.Prescription, error) {
	var prescriptions []*entities.Prescription
	if err := r.db.WithContext(ctx).Where("record_id = ?", recordID).Find(&prescriptions).Error; err != nil {
		return nil, err
	}
	return prescriptions, nil
}
