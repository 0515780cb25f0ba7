package console

import (
	"context"

	"hospital-management/internal/domain/dtos"
)

func (a *App) BookAppointment(ctx context.Context, form AppointmentForm) Result {
	return a.run("appointment.book", func() (string, error) {
		if err := a.check(form); err != nil {
			return "", err
		}
		if _, err := a.svc.Appointments.Book(ctx, dtos.BookAppointmentRequest{
			PatientID: form.PatientID,
			DoctorID:  form.DoctorID,
			Date:      form.Date,
			Time:      form.Time,
		}); err != nil {
			return "", err
		}
		return "Appointment booked successfully", nil
	})
}

func (a *App) ListAppointments(ctx context.Context) Result {
	return a.run("appointment.list", func() (string, error) {
		appointments, err := a.svc.Appointments.List(ctx)
		if err != nil {
			return "", err
		}
		rows := make([][]string, 0, len(appointments))
		for _, ap := range appointments {
			rows = append(rows, []string{ap.AppointmentID, ap.PatientName, ap.DoctorName, ap.Date, ap.Time, ap.Status})
		}
		if err := renderTable(a.out, []string{"ID", "PATIENT", "DOCTOR", "DATE", "TIME", "STATUS"}, rows); err != nil {
			return "", err
		}
		return plural(len(appointments), "appointment", "appointments"), nil
	})
}
