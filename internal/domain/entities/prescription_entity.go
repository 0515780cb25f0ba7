package entities

// Prescription is a single medicine line owned by a MedicalRecord.
type Prescription struct {
	PrescriptionID string `json:"prescription_id" gorm:"column:prescription_id;primaryKey"`
	RecordID       string `json:"record_id" gorm:"column:record_id"`
	MedicineName   string `json:"medicine_name" gorm:"column:medicine_name"`
	Dosage         string `json:"dosage" gorm:"column:dosage"`
	Frequency      string `json:"frequency" gorm:"column:frequency"`
	Duration       string `json:"duration" gorm:"column:duration"`
}

func (Prescription) TableName() string { return "prescriptions" }
