package dtos

// MedicalHistoryRow is one line of a patient's medical history.
type MedicalHistoryRow struct {
	RecordID   string `json:"record_id" gorm:"column:record_id"`
	Date       string `json:"date" gorm:"column:date"`
	DoctorName string `json:"doctor_name" gorm:"column:doctor_name"`
	Diagnosis  string `json:"diagnosis" gorm:"column:diagnosis"`
	Treatment  string `json:"treatment" gorm:"column:treatment"`
}

// MedicalRecordDetail is a record joined with its doctor and at most one prescription.
// The prescription fields are nil when the record has none.
type MedicalRecordDetail struct {
	RecordID     string  `json:"record_id" gorm:"column:record_id"`
	PatientID    string  `json:"patient_id" gorm:"column:patient_id"`
	DoctorID     string  `json:"doctor_id" gorm:"column:doctor_id"`
	Date         string  `json:"date" gorm:"column:date"`
	Diagnosis    string  `json:"diagnosis" gorm:"column:diagnosis"`
	Treatment    string  `json:"treatment" gorm:"column:treatment"`
	Notes        string  `json:"notes" gorm:"column:notes"`
	DoctorName   string  `json:"doctor_name" gorm:"column:doctor_name"`
	MedicineName *string `json:"medicine_name,omitempty" gorm:"column:medicine_name"`
	Dosage       *string `json:"dosage,omitempty" gorm:"column:dosage"`
	Frequency    *string `json:"frequency,omitempty" gorm:"column:frequency"`
	Duration     *string `json:"duration,omitempty" gorm:"column:duration"`
}

// HasPrescription reports whether the joined row carried a prescription.
func (d *MedicalRecordDetail) HasPrescription() bool {
	return d.MedicineName != nil && *d.MedicineName != ""
}
