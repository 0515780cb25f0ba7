package entities

// Patient represents a registered patient.
// Age is kept as the raw form value; the column has INTEGER affinity, so numeric
// strings are stored as integers and anything else is kept as text.
type Patient struct {
	PatientID  string `json:"patient_id" gorm:"column:patient_id;primaryKey"`
	Name       string `json:"name" gorm:"column:name;not null"`
	Age        string `json:"age" gorm:"column:age"`
	Gender     string `json:"gender" gorm:"column:gender"`
	Phone      string `json:"phone" gorm:"column:phone"`
	Address    string `json:"address" gorm:"column:address"`
	BloodGroup string `json:"blood_group" gorm:"column:blood_group"`
}

func (Patient) TableName() string { return "patients" }
