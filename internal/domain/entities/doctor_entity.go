package entities

// Doctor represents a registered doctor.
type Doctor struct {
	DoctorID       string `json:"doctor_id" gorm:"column:doctor_id;primaryKey"`
	Name           string `json:"name" gorm:"column:name;not null"`
	Specialization string `json:"specialization" gorm:"column:specialization"`
	Phone          string `json:"phone" gorm:"column:phone"`
	Email          string `json:"email" gorm:"column:email"`
}

func (Doctor) TableName() string { return "doctors" }
