// Package console is the terminal front end: it validates form input, calls the
// record services and renders tables plus one message per operation.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"hospital-management/internal/metrics"
	"hospital-management/internal/services"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Services groups the record services the console drives.
type Services struct {
	Patients     services.PatientServiceContract
	Doctors      services.DoctorServiceContract
	Appointments services.AppointmentServiceContract
	Records      services.MedicalRecordServiceContract
	Billing      services.BillingServiceContract
	Auth         services.AuthServiceContract
	Export       services.ExportServiceContract
}

// Result is the outcome of one operation as shown to the user.
type Result struct {
	Success bool
	Message string
}

func (r Result) String() string {
	if r.Success {
		return r.Message
	}
	return "Error: " + r.Message
}

// Err returns the message of a failed result as an error, nil on success.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return errors.New(r.Message)
}

type App struct {
	svc      Services
	out      io.Writer
	validate *validator.Validate
	metrics  *metrics.Recorder
	logger   *zap.Logger
}

// NewApp wires the console to its services. Tables are written to out; recorder
// may be nil.
func NewApp(svc Services, out io.Writer, recorder *metrics.Recorder, logger *zap.Logger) *App {
	return &App{
		svc:      svc,
		out:      out,
		validate: validator.New(),
		metrics:  recorder,
		logger:   logger,
	}
}

// run executes one operation, records its outcome and turns it into a Result.
func (a *App) run(operation string, fn func() (string, error)) Result {
	start := time.Now()
	msg, err := fn()
	a.metrics.Observe(operation, err, time.Since(start))
	if err != nil {
		a.logger.Warn("operation failed", zap.String("operation", operation), zap.Error(err))
		return Result{Message: err.Error()}
	}
	a.logger.Debug("operation done", zap.String("operation", operation))
	return Result{Success: true, Message: msg}
}

// check validates a form and flattens validator errors into one line.
func (a *App) check(form any) error {
	err := a.validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, got %q", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "datetime":
		return fmt.Sprintf("%s must match %s, got %q", fe.Field(), layoutHint(fe.Param()), fe.Value())
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

func layoutHint(layout string) string {
	switch layout {
	case dateLayout:
		return "YYYY-MM-DD"
	case timeLayout:
		return "HH:MM"
	default:
		return layout
	}
}
