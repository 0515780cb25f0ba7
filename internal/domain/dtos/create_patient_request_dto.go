package dtos

// RegisterPatientRequest carries the patient registration form.
// Fields are stored as given; Age is the raw text typed by the user.
type RegisterPatientRequest struct {
	Name       string `json:"name"`
	Age        string `json:"age"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	BloodGroup string `json:"blood_group"`
}
