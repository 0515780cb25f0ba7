package entities

// BillStatusPending is the only status ever written for a bill.
const BillStatusPending = "Pending"

// Bill is a charge raised against a patient.
type Bill struct {
	BillID      string  `json:"bill_id" gorm:"column:bill_id;primaryKey"`
	PatientID   string  `json:"patient_id" gorm:"column:patient_id"`
	Date        string  `json:"date" gorm:"column:date"`
	Description string  `json:"description" gorm:"column:description"`
	Amount      float64 `json:"amount" gorm:"column:amount"`
	Status      string  `json:"status" gorm:"column:status"`
}

func (Bill) TableName() string { return "bills" }
