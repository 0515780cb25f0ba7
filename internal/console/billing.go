package console

import (
	"context"
	"fmt"

	"hospital-management/internal/domain/dtos"
)

func (a *App) GenerateBill(ctx context.Context, form BillForm) Result {
	return a.run("bill.generate", func() (string, error) {
		if _, err := a.svc.Billing.GenerateBill(ctx, dtos.GenerateBillRequest{
			PatientID:   form.PatientID,
			Description: form.Description,
			Amount:      form.Amount,
		}); err != nil {
			return "", err
		}
		return "Bill generated successfully", nil
	})
}

func (a *App) BillHistory(ctx context.Context, patientID string) Result {
	return a.run("bill.history", func() (string, error) {
		bills, err := a.svc.Billing.History(ctx, patientID)
		if err != nil {
			return "", err
		}
		rows := make([][]string, 0, len(bills))
		for _, b := range bills {
			rows = append(rows, []string{b.BillID, b.Date, b.Description, fmt.Sprintf("%.2f", b.Amount), b.Status})
		}
		if err := renderTable(a.out, []string{"ID", "DATE", "DESCRIPTION", "AMOUNT", "STATUS"}, rows); err != nil {
			return "", err
		}
		return plural(len(bills), "bill", "bills"), nil
	})
}
