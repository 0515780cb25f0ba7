package services

import (
	"context"
	"errors"
	"sync/atomic"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
	"hospital-management/internal/domain/repositories"
	"hospital-management/internal/security"
)

// --- MockPatientRepository ---
var _ repositories.PatientRepositoryContract = (*MockPatientRepository)(nil)

type MockPatientRepository struct {
	CreateFunc  func(ctx context.Context, patient *entities.Patient) error
	GetByIDFunc func(ctx context.Context, id string) (*entities.Patient, error)
	ListAllFunc func(ctx context.Context) ([]*entities.Patient, error)
	SearchFunc  func(ctx context.Context, field dtos.SearchField, term string) ([]*entities.Patient, error)

	CreateFuncCallCount int32
	SearchFuncCallCount int32
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entities.Patient) error {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id string) (*entities.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) ListAll(ctx context.Context) ([]*entities.Patient, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPatientRepository) Search(ctx context.Context, field dtos.SearchField, term string) ([]*entities.Patient, error) {
	atomic.AddInt32(&m.SearchFuncCallCount, 1)
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, field, term)
	}
	return nil, nil
}

// --- MockDoctorRepository ---
var _ repositories.DoctorRepositoryContract = (*MockDoctorRepository)(nil)

type MockDoctorRepository struct {
	CreateFunc  func(ctx context.Context, doctor *entities.Doctor) error
	ListAllFunc func(ctx context.Context) ([]*entities.Doctor, error)
	SearchFunc  func(ctx context.Context, field dtos.SearchField, term string) ([]*entities.Doctor, error)

	SearchFuncCallCount int32
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *entities.Doctor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doctor)
	}
	return nil
}

func (m *MockDoctorRepository) ListAll(ctx context.Context) ([]*entities.Doctor, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockDoctorRepository) Search(ctx context.Context, field dtos.SearchField, term string) ([]*entities.Doctor, error) {
	atomic.AddInt32(&m.SearchFuncCallCount, 1)
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, field, term)
	}
	return nil, nil
}

// --- MockAppointmentRepository ---
var _ repositories.AppointmentRepositoryContract = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	CreateFunc          func(ctx context.Context, appointment *entities.Appointment) error
	ListJoinedFunc      func(ctx context.Context) ([]dtos.AppointmentRow, error)
	FindByPatientIDFunc func(ctx context.Context, patientID string) ([]*entities.Appointment, error)
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entities.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) ListJoined(ctx context.Context) ([]dtos.AppointmentRow, error) {
	if m.ListJoinedFunc != nil {
		return m.ListJoinedFunc(ctx)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]*entities.Appointment, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(ctx, patientID)
	}
	return nil, nil
}

// --- MockMedicalRecordRepository ---
var _ repositories.MedicalRecordRepositoryContract = (*MockMedicalRecordRepository)(nil)

type MockMedicalRecordRepository struct {
	CreateWithPrescriptionsFunc func(ctx context.Context, record *entities.MedicalRecord, prescriptions []*entities.Prescription) error
	FindByPatientIDFunc         func(ctx context.Context, patientID string) ([]dtos.MedicalHistoryRow, error)
	FindDetailFunc              func(ctx context.Context, patientID, date string) (*dtos.MedicalRecordDetail, error)
	ListPrescriptionsFunc       func(ctx context.Context, recordID string) ([]*entities.Prescription, error)

	CreateWithPrescriptionsCallCount int32
}

func (m *MockMedicalRecordRepository) CreateWithPrescriptions(ctx context.Context, record *entities.MedicalRecord, prescriptions []*entities.Prescription) error {
	atomic.AddInt32(&m.CreateWithPrescriptionsCallCount, 1)
	if m.CreateWithPrescriptionsFunc != nil {
		return m.CreateWithPrescriptionsFunc(ctx, record, prescriptions)
	}
	return nil
}

func (m *MockMedicalRecordRepository) FindByPatientID(ctx context.Context, patientID string) ([]dtos.MedicalHistoryRow, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(ctx, patientID)
	}
	return nil, nil
}

func (m *MockMedicalRecordRepository) FindDetail(ctx context.Context, patientID, date string) (*dtos.MedicalRecordDetail, error) {
	if m.FindDetailFunc != nil {
		return m.FindDetailFunc(ctx, patientID, date)
	}
	return nil, repositories.ErrNotFound
}

func (m *MockMedicalRecordRepository) ListPrescriptions(ctx context.Context, recordID string) ([]*entities.Prescription, error) {
	if m.ListPrescriptionsFunc != nil {
		return m.ListPrescriptionsFunc(ctx, recordID)
	}
	return nil, nil
}

// --- MockBillRepository ---
var _ repositories.BillRepositoryContract = (*MockBillRepository)(nil)

type MockBillRepository struct {
	CreateFunc          func(ctx context.Context, bill *entities.Bill) error
	FindByPatientIDFunc func(ctx context.Context, patientID string) ([]*entities.Bill, error)

	CreateFuncCallCount int32
}

func (m *MockBillRepository) Create(ctx context.Context, bill *entities.Bill) error {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, bill)
	}
	return nil
}

func (m *MockBillRepository) FindByPatientID(ctx context.Context, patientID string) ([]*entities.Bill, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(ctx, patientID)
	}
	return nil, nil
}

// --- MockUserRepository ---
var _ repositories.UserRepositoryContract = (*MockUserRepository)(nil)

type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *entities.User) error
	FindByUsernameFunc func(ctx context.Context, username string) (*entities.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, repositories.ErrNotFound
}

// --- MockDigester ---
var _ security.Digester = (*MockDigester)(nil)

// MockDigester stores passwords with a visible prefix.
type MockDigester struct {
	DigestErr error
}

func (m *MockDigester) Digest(password string) (string, error) {
	if m.DigestErr != nil {
		return "", m.DigestErr
	}
	return "digest:" + password, nil
}

func (m *MockDigester) Verify(digest, password string) bool {
	return digest == "digest:"+password
}
