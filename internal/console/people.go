package console

import (
	"context"
	"fmt"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
)

func (a *App) RegisterPatient(ctx context.Context, form PatientForm) Result {
	return a.run("patient.register", func() (string, error) {
		if err := a.check(form); err != nil {
			return "", err
		}
		id, err := a.svc.Patients.Register(ctx, dtos.RegisterPatientRequest{
			Name:       form.Name,
			Age:        form.Age,
			Gender:     form.Gender,
			Phone:      form.Phone,
			Address:    form.Address,
			BloodGroup: form.BloodGroup,
		})
		if err != nil {
			return "", err
		}
		return "Patient registered successfully. ID: " + id, nil
	})
}

func (a *App) ListPatients(ctx context.Context) Result {
	return a.run("patient.list", func() (string, error) {
		patients, err := a.svc.Patients.List(ctx)
		if err != nil {
			return "", err
		}
		rows := make([][]string, 0, len(patients))
		for _, p := range patients {
			rows = append(rows, []string{p.PatientID, p.Name, p.Age, p.Gender, p.Phone, p.BloodGroup})
		}
		if err := renderTable(a.out, []string{"ID", "NAME", "AGE", "GENDER", "PHONE", "BLOOD GROUP"}, rows); err != nil {
			return "", err
		}
		return plural(len(patients), "patient", "patients"), nil
	})
}

// ShowPatient prints the patient header followed by the medical history.
func (a *App) ShowPatient(ctx context.Context, patientID string) Result {
	return a.run("patient.show", func() (string, error) {
		patient, err := a.svc.Patients.Get(ctx, patientID)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(a.out, "Name: %s, Age: %s, Gender: %s, Blood Group: %s\n",
			patient.Name, patient.Age, patient.Gender, patient.BloodGroup)
		fmt.Fprintf(a.out, "Phone: %s, Address: %s\n\n", patient.Phone, patient.Address)

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

func (a *App) RegisterDoctor(ctx context.Context, form DoctorForm) Result {
	return a.run("doctor.register", func() (string, error) {
		id, err := a.svc.Doctors.Register(ctx, dtos.RegisterDoctorRequest{
			Name:           form.Name,
			Specialization: form.Specialization,
			Phone:          form.Phone,
			Email:          form.Email,
		})
		if err != nil {
			return "", err
		}
		return "Doctor registered successfully. ID: " + id, nil
	})
}

func (a *App) ListDoctors(ctx context.Context) Result {
	return a.run("doctor.list", func() (string, error) {
		doctors, err := a.svc.Doctors.List(ctx)
		if err != nil {
			return "", err
		}
		rows := make([][]string, 0, len(doctors))
		for _, d := range doctors {
			rows = append(rows, []string{d.DoctorID, d.Name, d.Specialization, d.Phone, d.Email})
		}
		if err := renderTable(a.out, []string{"ID", "NAME", "SPECIALIZATION", "PHONE", "EMAIL"}, rows); err != nil {
			return "", err
		}
		return plural(len(doctors), "doctor", "doctors"), nil
	})
}

// Search lists matching patients or doctors as ID, Name and a Details summary.
func (a *App) Search(ctx context.Context, form SearchForm) Result {
	return a.run("search", func() (string, error) {
		if err := a.check(form); err != nil {
			return "", err
		}
		field := dtos.SearchField(form.Field)

		var rows [][]string
		if form.Entity == "doctor" {
			doctors, err := a.svc.Doctors.Search(ctx, field, form.Term)
			if err != nil {
				return "", err
			}
			for _, d := range doctors {
				rows = append(rows, []string{d.DoctorID, d.Name, doctorDetails(d)})
			}
		} else {
			patients, err := a.svc.Patients.Search(ctx, field, form.Term)
			if err != nil {
				return "", err
			}
			for _, p := range patients {
				rows = append(rows, []string{p.PatientID, p.Name, patientDetails(p)})
			}
		}

		if err := renderTable(a.out, []string{"ID", "NAME", "DETAILS"}, rows); err != nil {
			return "", err
		}
		return plural(len(rows), "match", "matches"), nil
	})
}

func patientDetails(p *entities.Patient) string {
	return fmt.Sprintf("%s, Age: %s, Phone: %s", p.Gender, p.Age, p.Phone)
}

func doctorDetails(d *entities.Doctor) string {
	return fmt.Sprintf("%s, Phone: %s", d.Specialization, d.Phone)
}
