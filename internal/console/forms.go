package console

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Gender and blood group are closed choices; an empty value is accepted.

type PatientForm struct {
	Name       string
	Age        string
	Gender     string `validate:"omitempty,oneof=Male Female Other"`
	Phone      string
	Address    string
	BloodGroup string `validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
}

type DoctorForm struct {
	Name           string
	Specialization string
	Phone          string
	Email          string
}

type SearchForm struct {
	Entity string `validate:"required,oneof=patient doctor"`
	Field  string
	Term   string
}

type AppointmentForm struct {
	PatientID string
	DoctorID  string
	Date      string `validate:"omitempty,datetime=2006-01-02"`
	Time      string `validate:"omitempty,datetime=15:04"`
}

type PrescriptionForm struct {
	MedicineName string
	Dosage       string
	Frequency    string
	Duration     string
}

type RecordForm struct {
	PatientID     string
	DoctorID      string
	Diagnosis     string
	Treatment     string
	Notes         string
	Prescriptions []PrescriptionForm
}

type BillForm struct {
	PatientID   string
	Description string
	Amount      string
}

type LoginForm struct {
	Username string
	Password string
}

type UserForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Role     string `validate:"required"`
}
