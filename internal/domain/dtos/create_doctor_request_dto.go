package dtos

// RegisterDoctorRequest carries the doctor registration form.
type RegisterDoctorRequest struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}
