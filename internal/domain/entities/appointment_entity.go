package entities

// AppointmentStatusScheduled is the only status ever written for an appointment.
const AppointmentStatusScheduled = "Scheduled"

// Appointment links a patient and a doctor at a date (YYYY-MM-DD) and time (HH:MM).
// PatientID and DoctorID are not checked against their tables when stored.
type Appointment struct {
	AppointmentID string `json:"appointment_id" gorm:"column:appointment_id;primaryKey"`
	PatientID     string `json:"patient_id" gorm:"column:patient_id"`
	DoctorID      string `json:"doctor_id" gorm:"column:doctor_id"`
	Date          string `json:"date" gorm:"column:date"`
	Time          string `json:"time" gorm:"column:time"`
	Status        string `json:"status" gorm:"column:status"`
}

func (Appointment) TableName() string { return "appointments" }
