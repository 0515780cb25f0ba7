package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"hospital-management/internal/domain/entities"
)

type FHIRBundleEntry struct {
	FullURL  string `json:"fullUrl"`
	Resource any    `json:"resource"`
}

// FHIRBundle is a collection Bundle.
type FHIRBundle struct {
	ResourceType string            `json:"resourceType"`
	Type         string            `json:"type"`
	Timestamp    string            `json:"timestamp"`
	Entry        []FHIRBundleEntry `json:"entry"`
}

// MapPatientBundle packs a patient and its appointments into one collection
// Bundle. The patient entry always comes first.
func MapPatientBundle(patient entities.Patient, appointments []*entities.Appointment, generatedAt time.Time) (json.RawMessage, error) {
	patientResource, err := NewFHIRPatient(patient)
	if err != nil {
		return nil, err
	}

	bundle := FHIRBundle{
		ResourceType: "Bundle",
		Type:         "collection",
		Timestamp:    generatedAt.Format(time.RFC3339),
		Entry: []FHIRBundleEntry{
			{FullURL: "urn:uuid:" + patient.PatientID, Resource: patientResource},
		},
	}
	for _, appointment := range appointments {
		if appointment == nil {
			continue
		}
		bundle.Entry = append(bundle.Entry, FHIRBundleEntry{
			FullURL:  "urn:uuid:" + appointment.AppointmentID,
			Resource: NewFHIRAppointment(*appointment, generatedAt.Location()),
		})
	}

	rawJSON, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshalling FHIR bundle to JSON: %w", err)
	}
	return rawJSON, nil
}
