package entities

// MedicalRecord represents one consultation entry for a patient.
// Date is the day the record was saved, formatted YYYY-MM-DD.
type MedicalRecord struct {
	RecordID  string `json:"record_id" gorm:"column:record_id;primaryKey"`
	PatientID string `json:"patient_id" gorm:"column:patient_id"`
	DoctorID  string `json:"doctor_id" gorm:"column:doctor_id"`
	Date      string `json:"date" gorm:"column:date"`
	Diagnosis string `json:"diagnosis" gorm:"column:diagnosis"`
	Treatment string `json:"treatment" gorm:"column:treatment"`
	Notes     string `json:"notes" gorm:"column:notes"`
}

func (MedicalRecord) TableName() string { return "medical_records" }
