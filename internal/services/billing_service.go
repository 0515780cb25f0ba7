package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
	"hospital-management/internal/domain/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BillingServiceImpl struct {
	billRepo repositories.BillRepositoryContract
	logger   *zap.Logger
	newID    func() string
	now      func() time.Time
}

func NewBillingService(repo repositories.BillRepositoryContract, logger *zap.Logger) BillingServiceContract {
	return &BillingServiceImpl{
		billRepo: repo,
		logger:   logger,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

func (s *BillingServiceImpl) GenerateBill(ctx context.Context, req dtos.GenerateBillRequest) (string, error) {
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		s.logger.Warn("rejected bill amount", zap.String("amount", req.Amount))
		return "", err
	}

	bill := &entities.Bill{
		BillID:      s.newID(),
		PatientID:   req.PatientID,
		Date:        s.now().Format(dateLayout),
		Description: req.Description,
		Amount:      amount,
		Status:      entities.BillStatusPending,
	}
	if err := s.billRepo.Create(ctx, bill); err != nil {
		s.logger.Error("failed to generate bill", zap.String("patient_id", req.PatientID), zap.Error(err))
		return "", fmt.Errorf("generate bill: %w", err)
	}

	s.logger.Info("bill generated",
		zap.String("bill_id", bill.BillID),
		zap.String("patient_id", bill.PatientID),
		zap.Float64("amount", bill.Amount))
	return bill.BillID, nil
}

func (s *BillingServiceImpl) History(ctx context.Context, patientID string) ([]*entities.Bill, error) {
	bills, err := s.billRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("bills of patient %s: %w", patientID, err)
	}
	return bills, nil
}

// ParseAmount converts the raw amount text of the billing form. Surrounding
// blanks are ignored.
func ParseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return amount, nil
}
