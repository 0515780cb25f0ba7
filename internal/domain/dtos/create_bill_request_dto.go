package dtos

// GenerateBillRequest carries the billing form. Amount is the raw text and must
// parse as a decimal number.
type GenerateBillRequest struct {
	PatientID   string `json:"patient_id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}
