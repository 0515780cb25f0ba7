package dtos

// AppointmentRow is one line of the appointment list, joined with patient and doctor names.
type AppointmentRow struct {
	AppointmentID string `json:"appointment_id" gorm:"column:appointment_id"`
	PatientName   string `json:"patient_name" gorm:"column:patient_name"`
	DoctorName    string `json:"doctor_name" gorm:"column:doctor_name"`
	Date          string `json:"date" gorm:"column:date"`
	Time          string `json:"time" gorm:"column:time"`
	Status        string `json:"status" gorm:"column:status"`
}
