package dtos

// BookAppointmentRequest carries the booking form. Date is YYYY-MM-DD, Time is HH:MM.
type BookAppointmentRequest struct {
	PatientID string `json:"patient_id"`
	DoctorID  string `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}
