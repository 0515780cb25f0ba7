package repositories

import (
	"context"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"

	"gorm.io/gorm"
)

// Inner joins: appointments whose patient or doctor is missing are left out.
const listAppointmentsQuery = `
	SELECT a.appointment_id, p.name AS patient_name, d.name AS doctor_name,
	       a.date, a.time, a.status
	FROM appointments a
	JOIN patients p ON a.patient_id = p.patient_id
	JOIN doctors d ON a.doctor_id = d.doctor_id`

type AppointmentRepository struct {
	db *gorm.DB
}

var _ AppointmentRepositoryContract = (*AppointmentRepository)(nil)

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *entities.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *AppointmentRepository) ListJoined(ctx context.Context) ([]dtos.AppointmentRow, error) {
	var rows []dtos.AppointmentRow
	if err := r.db.WithContext(ctx).Raw(listAppointmentsQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByPatientID returns the raw appointment rows of a patient, without joins.
func (r *AppointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]*entities.Appointment, error) {
	var appointments []*entities.Appointment
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date, time").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
