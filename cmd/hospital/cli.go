package main

import (
	"errors"
	"fmt"

	"hospital-management/internal/config"
	"hospital-management/internal/console"
	"hospital-management/internal/database"
	"hospital-management/internal/domain/repositories"
	"hospital-management/internal/metrics"
	"hospital-management/internal/security"
	"hospital-management/internal/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errNoCredentials = errors.New("credentials required: pass --user and --password or set HMS_USERNAME and HMS_PASSWORD")

// cli holds what every command needs once the login gate is passed.
type cli struct {
	cfg      *config.Config
	log      *zap.Logger
	recorder *metrics.Recorder
	db       *gorm.DB
	app      *console.App
}

// setup opens the database, builds the services and runs the login gate.
func (c *cli) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()

	db, err := database.Open(c.cfg.Database, c.log)
	if err != nil {
		return err
	}
	c.db = db
	if err := database.EnsureSchema(ctx, db); err != nil {
		return err
	}

	patientRepo := repositories.NewPatientRepository(db)
	doctorRepo := repositories.NewDoctorRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)
	billRepo := repositories.NewBillRepository(db)

	svc := console.Services{
		Patients:     services.NewPatientService(patientRepo, c.log),
		Doctors:      services.NewDoctorService(doctorRepo, c.log),
		Appointments: services.NewAppointmentService(appointmentRepo, c.log),
		Records:      services.NewMedicalRecordService(repositories.NewMedicalRecordRepository(db), c.log),
		Billing:      services.NewBillingService(billRepo, c.log),
		Auth:         services.NewAuthService(repositories.NewUserRepository(db), security.NewBcryptDigester(), c.log),
		Export:       services.NewExportService(patientRepo, doctorRepo, appointmentRepo, billRepo, c.log),
	}
	c.app = console.NewApp(svc, cmd.OutOrStdout(), c.recorder, c.log)

	if c.cfg.Auth.Username == "" || c.cfg.Auth.Password == "" {
		return errNoCredentials
	}
	_, res := c.app.Login(ctx, console.LoginForm{Username: c.cfg.Auth.Username, Password: c.cfg.Auth.Password})
	return res.Err()
}

func (c *cli) close() {
	if c.db == nil {
		return
	}
	if err := database.Close(c.db); err != nil {
		c.log.Warn("failed to close database", zap.Error(err))
	}
	c.db = nil
}

// report prints the message of a successful result and turns a failed one into
// the command error.
func report(cmd *cobra.Command, res console.Result) error {
	if err := res.Err(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return nil
}
