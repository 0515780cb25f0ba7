package services

import (
	"context"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
)

// BillingServiceContract defines the billing operations.
type BillingServiceContract interface {
	// GenerateBill stores a Pending bill dated today. It returns ErrInvalidAmount
	// without writing anything when the amount is not a decimal number.
	GenerateBill(ctx context.Context, req dtos.GenerateBillRequest) (string, error)
	// History returns the patient's bills, newest date first.
	History(ctx context.Context, patientID string) ([]*entities.Bill, error)
}
