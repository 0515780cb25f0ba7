package reports

import (
	"bytes"
	"fmt"
	"time"

	"hospital-management/internal/domain/entities"

	"github.com/jung-kurt/gofpdf"
)

// GenerateBillStatement renders the bills of one patient as an A4 PDF with a
// grand total.
func GenerateBillStatement(patient entities.Patient, bills []*entities.Bill, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 70, 140)
	pdf.CellFormat(0, 10, "Hospital Management - Bill Statement", "", 1, "C", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, "Generated "+generatedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	addDetail(pdf, "Patient ID", patient.PatientID)
	addDetail(pdf, "Patient Name", tr(patient.Name))
	addDetail(pdf, "Phone", tr(patient.Phone))
	pdf.Ln(4)

	widths := []float64{30, 90, 35, 35}
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 243, 255)
	for i, title := range []string{"Date", "Description", "Amount", "Status"} {
		pdf.CellFormat(widths[i], 8, title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	var total float64
	for _, bill := range bills {
		total += bill.Amount
		pdf.CellFormat(widths[0], 7, bill.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, tr(bill.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%.2f", bill.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, bill.Status, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	if len(bills) == 0 {
		pdf.CellFormat(0, 7, "No bills on record.", "1", 1, "C", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(widths[0]+widths[1], 8, "Grand Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[2]+widths[3], 8, fmt.Sprintf("%.2f", total), "1", 1, "R", false, 0, "")

	pdf.SetY(pdf.GetY() + 12)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 10, "This is a computer generated statement", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render bill statement: %w", err)
	}
	return buf.Bytes(), nil
}

func addDetail(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 7, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}
