package services

import (
	"context"
	"testing"

	"hospital-management/internal/database"
	"hospital-management/internal/database/dbtest"
	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/repositories"
	"hospital-management/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceSet struct {
	patients     PatientServiceContract
	doctors      DoctorServiceContract
	appointments AppointmentServiceContract
	records      MedicalRecordServiceContract
	billing      BillingServiceContract
	auth         AuthServiceContract
	export       ExportServiceContract
}

func newServiceSet(db *gorm.DB) serviceSet {
	log := zap.NewNop()
	patientRepo := repositories.NewPatientRepository(db)
	doctorRepo := repositories.NewDoctorRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)
	billRepo := repositories.NewBillRepository(db)
	return serviceSet{
		patients:     NewPatientService(patientRepo, log),
		doctors:      NewDoctorService(doctorRepo, log),
		appointments: NewAppointmentService(appointmentRepo, log),
		records:      NewMedicalRecordService(repositories.NewMedicalRecordRepository(db), log),
		billing:      NewBillingService(billRepo, log),
		auth:         NewAuthService(repositories.NewUserRepository(db), security.BcryptDigester{Cost: 4}, log),
		export:       NewExportService(patientRepo, doctorRepo, appointmentRepo, billRepo, log),
	}
}

func TestIntegration_RegisterBookAndList(t *testing.T) {
	ctx := context.Background()
	s := newServiceSet(dbtest.Open(t))

	patientID, err := s.patients.Register(ctx, dtos.RegisterPatientRequest{Name: "Alice", Age: "30", Gender: "Female"})
	require.NoError(t, err)
	doctorID, err := s.doctors.Register(ctx, dtos.RegisterDoctorRequest{Name: "Dr. Bob", Specialization: "Cardiology"})
	require.NoError(t, err)

	patients, err := s.patients.List(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, patientID, patients[0].PatientID)

	_, err = s.appointments.Book(ctx, dtos.BookAppointmentRequest{PatientID: patientID, DoctorID: doctorID, Date: "2026-10-20", Time: "09:30"})
	require.NoError(t, err)
	_, err = s.appointments.Book(ctx, dtos.BookAppointmentRequest{PatientID: "nobody", DoctorID: doctorID, Date: "2026-10-20", Time: "10:30"})
	require.NoError(t, err)

	rows, err := s.appointments.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].PatientName)
	assert.Equal(t, "Dr. Bob", rows[0].DoctorName)
	assert.Equal(t, "Scheduled", rows[0].Status)

	bundle, err := s.export.PatientBundle(ctx, patientID)
	require.NoError(t, err)
	assert.Contains(t, string(bundle), `"resourceType": "Bundle"`)
	assert.Contains(t, string(bundle), "Practitioner/"+doctorID)
}

func TestIntegration_SaveRecordAndHistory(t *testing.T) {
	ctx := context.Background()
	s := newServiceSet(dbtest.Open(t))

	patientID, err := s.patients.Register(ctx, dtos.RegisterPatientRequest{Name: "Alice"})
	require.NoError(t, err)
	doctorID, err := s.doctors.Register(ctx, dtos.RegisterDoctorRequest{Name: "Dr. Bob"})
	require.NoError(t, err)

	recordID, err := s.records.SaveRecord(ctx, dtos.SaveMedicalRecordRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		Diagnosis: "Flu",
		Treatment: "Rest",
		Prescriptions: []dtos.PrescriptionLine{
			{MedicineName: "Paracetamol", Dosage: "500mg"},
			{},
			{MedicineName: "Vitamin C"},
			{MedicineName: "Zinc"},
		},
	})
	require.NoError(t, err)

	prescriptions, err := s.records.Prescriptions(ctx, recordID)
	require.NoError(t, err)
	assert.Len(t, prescriptions, 3)

	history, err := s.records.History(ctx, patientID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Dr. Bob", history[0].DoctorName)

	detail, err := s.records.Detail(ctx, patientID, history[0].Date)
	require.NoError(t, err)
	assert.Equal(t, recordID, detail.RecordID)
	assert.True(t, detail.HasPrescription())
}

func TestIntegration_Billing(t *testing.T) {
	ctx := context.Background()
	s := newServiceSet(dbtest.Open(t))

	patientID, err := s.patients.Register(ctx, dtos.RegisterPatientRequest{Name: "Alice"})
	require.NoError(t, err)

	_, err = s.billing.GenerateBill(ctx, dtos.GenerateBillRequest{PatientID: patientID, Description: "Consultation", Amount: "150.50"})
	require.NoError(t, err)
	_, err = s.billing.GenerateBill(ctx, dtos.GenerateBillRequest{PatientID: patientID, Description: "Bad", Amount: "abc"})
	require.ErrorIs(t, err, ErrInvalidAmount)

	bills, err := s.billing.History(ctx, patientID)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.InDelta(t, 150.50, bills[0].Amount, 1e-9)
	assert.Equal(t, "Pending", bills[0].Status)

	pdf, err := s.export.BillStatement(ctx, patientID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestIntegration_LoginWithBootstrapAndAddedUser(t *testing.T) {
	ctx := context.Background()
	s := newServiceSet(dbtest.Open(t))

	role, err := s.auth.Login(ctx, dtos.LoginRequest{Username: database.BootstrapUsername, Password: database.BootstrapPassword})
	require.NoError(t, err)
	assert.Equal(t, database.BootstrapRole, role)

	_, err = s.auth.Login(ctx, dtos.LoginRequest{Username: database.BootstrapUsername, Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, s.auth.AddUser(ctx, "nurse", "s3cret", "staff"))
	role, err = s.auth.Login(ctx, dtos.LoginRequest{Username: "nurse", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "staff", role)
}
