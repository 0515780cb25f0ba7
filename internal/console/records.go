package console

import (
	"context"
	"fmt"
	"io"

	"hospital-management/internal/domain/dtos"
)

func (a *App) SaveRecord(ctx context.Context, form RecordForm) Result {
	return a.run("record.save", func() (string, error) {
		lines := make([]dtos.PrescriptionLine, 0, len(form.Prescriptions))
		for _, p := range form.Prescriptions {
			lines = append(lines, dtos.PrescriptionLine{
				MedicineName: p.MedicineName,
				Dosage:       p.Dosage,
				Frequency:    p.Frequency,
				Duration:     p.Duration,
			})
		}
		if _, err := a.svc.Records.SaveRecord(ctx, dtos.SaveMedicalRecordRequest{
			PatientID:     form.PatientID,
			DoctorID:      form.DoctorID,
			Diagnosis:     form.Diagnosis,
			Treatment:     form.Treatment,
			Notes:         form.Notes,
			Prescriptions: lines,
		}); err != nil {
			return "", err
		}
		return "Medical record saved successfully", nil
	})
}

func (a *App) ShowHistory(ctx context.Context, patientID string) Result {
	return a.run("record.history", func() (string, error) {
		history, err := a.svc.Records.History(ctx, patientID)
		if err != nil {
			return "", err
		}
		if err := renderHistory(a.out, history); err != nil {
			return "", err
		}
		return plural(len(history), "medical record", "medical records"), nil
	})
}

// ShowRecord prints one record of a patient on date. Only the first prescription
// of the record is part of the detail; ShowPrescriptions lists all of them.
func (a *App) ShowRecord(ctx context.Context, patientID, date string) Result {
	return a.run("record.show", func() (string, error) {
		detail, err := a.svc.Records.Detail(ctx, patientID, date)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(a.out, "Record:    %s\n", detail.RecordID)
		fmt.Fprintf(a.out, "Date:      %s\n", detail.Date)
		fmt.Fprintf(a.out, "Doctor:    %s\n", detail.DoctorName)
		fmt.Fprintf(a.out, "Diagnosis: %s\n", detail.Diagnosis)
		fmt.Fprintf(a.out, "Treatment: %s\n", detail.Treatment)
		fmt.Fprintf(a.out, "Notes:     %s\n", detail.Notes)
		if detail.HasPrescription() {
			fmt.Fprintf(a.out, "Prescription: %s - %s - %s - %s\n",
				*detail.MedicineName, deref(detail.Dosage), deref(detail.Frequency), deref(detail.Duration))
		} else {
			fmt.Fprintln(a.out, "Prescription: none")
		}
		return "Medical record " + detail.RecordID, nil
	})
}

func (a *App) ShowPrescriptions(ctx context.Context, recordID string) Result {
	return a.run("record.prescriptions", func() (string, error) {
		prescriptions, err := a.svc.Records.Prescriptions(ctx, recordID)
		if err != nil {
			return "", err
		}
		rows := make([][]string, 0, len(prescriptions))
		for _, p := range prescriptions {
			rows = append(rows, []string{p.MedicineName, p.Dosage, p.Frequency, p.Duration})
		}
		if err := renderTable(a.out, []string{"MEDICINE", "DOSAGE", "FREQUENCY", "DURATION"}, rows); err != nil {
			return "", err
		}
		return plural(len(prescriptions), "prescription", "prescriptions"), nil
	})
}

func renderHistory(w io.Writer, history []dtos.MedicalHistoryRow) error {
	rows := make([][]string, 0, len(history))
	for _, h := range history {
		rows = append(rows, []string{h.RecordID, h.Date, h.DoctorName, h.Diagnosis, h.Treatment})
	}
	return renderTable(w, []string{"RECORD", "DATE", "DOCTOR", "DIAGNOSIS", "TREATMENT"}, rows)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
