package dtos

// PrescriptionLine is one medicine row of the record form.
// Lines with an empty MedicineName are ignored on save.
type PrescriptionLine struct {
	MedicineName string `json:"medicine_name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
}

// SaveMedicalRecordRequest defines the payload for creating a new medical record
// together with its prescriptions.
type SaveMedicalRecordRequest struct {
	PatientID     string             `json:"patient_id"`
	DoctorID      string             `json:"doctor_id"`
	Diagnosis     string             `json:"diagnosis"`
	Treatment     string             `json:"treatment"`
	Notes         string             `json:"notes"`
	Prescriptions []PrescriptionLine `json:"prescriptions"`
}
