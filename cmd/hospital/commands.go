package main

import (
	"fmt"
	"strings"

	"hospital-management/internal/console"

	"github.com/spf13/cobra"
)

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hospital",
		Short:         "Hospital management over a local database file",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return c.setup(cmd)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfg.Database.Path, "db", c.cfg.Database.Path, "Path to the database file")
	flags.StringVar(&c.cfg.Auth.Username, "user", c.cfg.Auth.Username, "Login username")
	flags.StringVar(&c.cfg.Auth.Password, "password", c.cfg.Auth.Password, "Login password")

	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(patientCmd(c))
	rootCmd.AddCommand(doctorCmd(c))
	rootCmd.AddCommand(searchCmd(c))
	rootCmd.AddCommand(appointmentCmd(c))
	rootCmd.AddCommand(recordCmd(c))
	rootCmd.AddCommand(billCmd(c))
	rootCmd.AddCommand(exportCmd(c))
	rootCmd.AddCommand(userCmd(c))
	return rootCmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database file and its tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Database ready")
			return nil
		},
	}
}

func patientCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Register, list and show patients",
	}

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			age, _ := cmd.Flags().GetString("age")
			gender, _ := cmd.Flags().GetString("gender")
			phone, _ := cmd.Flags().GetString("phone")
			address, _ := cmd.Flags().GetString("address")
			bloodGroup, _ := cmd.Flags().GetString("blood-group")
			return report(cmd, c.app.RegisterPatient(cmd.Context(), console.PatientForm{
				Name:       name,
				Age:        age,
				Gender:     gender,
				Phone:      phone,
				Address:    address,
				BloodGroup: bloodGroup,
			}))
		},
	}
	registerCmd.Flags().String("name", "", "Full name")
	registerCmd.Flags().String("age", "", "Age in years")
	registerCmd.Flags().String("gender", "", "Male, Female or Other")
	registerCmd.Flags().String("phone", "", "Phone number")
	registerCmd.Flags().String("address", "", "Postal address")
	registerCmd.Flags().String("blood-group", "", "A+, A-, B+, B-, AB+, AB-, O+ or O-")
	cmd.AddCommand(registerCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, c.app.ListPatients(cmd.Context()))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show PATIENT_ID",
		Short: "Show a patient with its medical history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, c.app.ShowPatient(cmd.Context(), args[0]))
		},
	})
	return cmd
}

func doctorCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Register and list doctors",
	}

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a doctor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			specialization, _ := cmd.Flags().GetString("specialization")
			phone, _ := cmd.Flags().GetString("phone")
			email, _ := cmd.Flags().GetString("email")
			return report(cmd, c.app.RegisterDoctor(cmd.Context(), console.DoctorForm{
				Name:           name,
				Specialization: specialization,
				Phone:          phone,
				Email:          email,
			}))
		},
	}
	registerCmd.Flags().String("name", "", "Full name")
	registerCmd.Flags().String("specialization", "", "Medical specialization")
	registerCmd.Flags().String("phone", "", "Phone number")
	registerCmd.Flags().String("email", "", "Email address")
	cmd.AddCommand(registerCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every doctor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, c.app.ListDoctors(cmd.Context()))
		},
	})
	return cmd
}

func searchCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search TERM",
		Short: "Search patients or doctors by id or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, _ := cmd.Flags().GetString("entity")
			field, _ := cmd.Flags().GetString("field")
			return report(cmd, c.app.Search(cmd.Context(), console.SearchForm{
				Entity: entity,
				Field:  field,
				Term:   args[0],
			}))
		},
	}
	cmd.Flags().String("entity", "patient", "patient or doctor")
	cmd.Flags().String("field", "name", "id or name")
	return cmd
}

func appointmentCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointment",
		Short: "Book and list appointments",
	}

	bookCmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			doctorID, _ := cmd.Flags().GetString("doctor")
			date, _ := cmd.Flags().GetString("date")
			at, _ := cmd.Flags().GetString("time")
			return report(cmd, c.app.BookAppointment(cmd.Context(), console.AppointmentForm{
				PatientID: patientID,
				DoctorID:  doctorID,
				Date:      date,
				Time:      at,
			}))
		},
	}
	bookCmd.Flags().String("patient", "", "Patient ID")
	bookCmd.Flags().String("doctor", "", "Doctor ID")
	bookCmd.Flags().String("date", "", "Date as YYYY-MM-DD")
	bookCmd.Flags().String("time", "", "Time as HH:MM")
	cmd.AddCommand(bookCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List appointments with patient and doctor names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, c.app.ListAppointments(cmd.Context()))
		},
	})
	return cmd
}

func recordCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Save and read medical records",
	}

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Save a medical record dated today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			doctorID, _ := cmd.Flags().GetString("doctor")
			diagnosis, _ := cmd.Flags().GetString("diagnosis")
			treatment, _ := cmd.Flags().GetString("treatment")
			notes, _ := cmd.Flags().GetString("notes")
			rx, _ := cmd.Flags().GetStringArray("rx")

			prescriptions := make([]console.PrescriptionForm, 0, len(rx))
			for _, line := range rx {
				prescriptions = append(prescriptions, parsePrescription(line))
			}
			return report(cmd, c.app.SaveRecord(cmd.Context(), console.RecordForm{
				PatientID:     patientID,
				DoctorID:      doctorID,
				Diagnosis:     diagnosis,
				Treatment:     treatment,
				Notes:         notes,
				Prescriptions: prescriptions,
			}))
		},
	}
	saveCmd.Flags().String("patient", "", "Patient ID")
	saveCmd.Flags().String("doctor", "", "Doctor ID")
	saveCmd.Flags().String("diagnosis", "", "Diagnosis")
	saveCmd.Flags().String("treatment", "", "Treatment")
	saveCmd.Flags().String("notes", "", "Free notes")
	saveCmd.Flags().StringArray("rx", nil, `Prescription as "medicine|dosage|frequency|duration", repeatable`)
	cmd.AddCommand(saveCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "history PATIENT_ID",
		Short: "List a patient's medical records, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, c.app.ShowHistory(cmd.Context(), args[0]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show PATIENT_ID DATE",
		Short: "Show the record of a patient on a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, c.app.ShowRecord(cmd.Context(), args[0], args[1]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "prescriptions RECORD_ID",
		Short: "List every prescription of a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, c.app.ShowPrescriptions(cmd.Context(), args[0]))
		},
	})
	return cmd
}

// parsePrescription splits "medicine|dosage|frequency|duration"; missing parts
// stay empty.
func parsePrescription(line string) console.PrescriptionForm {
	parts := strings.SplitN(line, "|", 4)
	for len(parts) < 4 {
		parts = append(parts, "")
	}
	return console.PrescriptionForm{
		MedicineName: strings.TrimSpace(parts[0]),
		Dosage:       strings.TrimSpace(parts[1]),
		Frequency:    strings.TrimSpace(parts[2]),
		Duration:     strings.TrimSpace(parts[3]),
	}
}

func billCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Generate and list bills",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a pending bill dated today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			description, _ := cmd.Flags().GetString("description")
			amount, _ := cmd.Flags().GetString("amount")
			return report(cmd, c.app.GenerateBill(cmd.Context(), console.BillForm{
				PatientID:   patientID,
				Description: description,
				Amount:      amount,
			}))
		},
	}
	generateCmd.Flags().String("patient", "", "Patient ID")
	generateCmd.Flags().String("description", "", "What the bill is for")
	generateCmd.Flags().String("amount", "", "Decimal amount")
	cmd.AddCommand(generateCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "history PATIENT_ID",
		Short: "List a patient's bills, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, c.app.BillHistory(cmd.Context(), args[0]))
		},
	})

	statementCmd := &cobra.Command{
		Use:   "statement PATIENT_ID",
		Short: "Write a PDF statement of a patient's bills",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = "bills-" + args[0] + ".pdf"
			}
			return report(cmd, c.app.BillStatement(cmd.Context(), args[0], out))
		},
	}
	statementCmd.Flags().String("out", "", "Output file (default bills-PATIENT_ID.pdf)")
	cmd.AddCommand(statementCmd)
	return cmd
}

func exportCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export records as FHIR or spreadsheet",
	}

	fhirCmd := &cobra.Command{
		Use:   "fhir PATIENT_ID",
		Short: "Export a patient and its appointments as a FHIR bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			return report(cmd, c.app.ExportFHIR(cmd.Context(), args[0], out))
		},
	}
	fhirCmd.Flags().String("out", "-", "Output file, - for stdout")
	cmd.AddCommand(fhirCmd)

	registryCmd := &cobra.Command{
		Use:   "registry",
		Short: "Write every patient and doctor to an .xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			return report(cmd, c.app.ExportRegistry(cmd.Context(), out))
		},
	}
	registryCmd.Flags().String("out", "registry.xlsx", "Output file")
	cmd.AddCommand(registryCmd)
	return cmd
}

func userCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage login accounts",
	}

	addCmd := &cobra.Command{
		Use:   "add USERNAME",
		Short: "Add a login account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, _ := cmd.Flags().GetString("new-password")
			role, _ := cmd.Flags().GetString("role")
			return report(cmd, c.app.AddUser(cmd.Context(), console.UserForm{
				Username: args[0],
				Password: password,
				Role:     role,
			}))
		},
	}
	addCmd.Flags().String("new-password", "", "Password of the new account")
	addCmd.Flags().String("role", "staff", "Role of the new account")
	cmd.AddCommand(addCmd)
	return cmd
}
