package mappers

import (
	"encoding/json"
	"fmt"
	"strings"

	"hospital-management/internal/domain/entities"
)

// FHIRHumanName represents a FHIR HumanName data type.
type FHIRHumanName struct {
	Use    string   `json:"use,omitempty"`
	Text   string   `json:"text,omitempty"`
	Family string   `json:"family,omitempty"`
	Given  []string `json:"given,omitempty"`
}

// FHIRContactPoint represents a FHIR ContactPoint data type.
type FHIRContactPoint struct {
	System string `json:"system"`
	Value  string `json:"value"`
	Use    string `json:"use,omitempty"`
}

// FHIRAddress represents a FHIR Address data type with free text only.
type FHIRAddress struct {
	Use  string `json:"use,omitempty"`
	Text string `json:"text"`
}

// FHIRPatientGender represents the administrative gender of a patient.
// FHIR values: male | female | other | unknown
type FHIRPatientGender string

const (
	GenderMale    FHIRPatientGender = "male"
	GenderFemale  FHIRPatientGender = "female"
	GenderOther   FHIRPatientGender = "other"
	GenderUnknown FHIRPatientGender = "unknown"
)

// FHIRPatientResource represents a simplified FHIR Patient resource.
type FHIRPatientResource struct {
	ResourceType string             `json:"resourceType"`
	ID           string             `json:"id,omitempty"`
	Name         []FHIRHumanName    `json:"name,omitempty"`
	Gender       FHIRPatientGender  `json:"gender,omitempty"`
	Telecom      []FHIRContactPoint `json:"telecom,omitempty"`
	Address      []FHIRAddress      `json:"address,omitempty"`
}

// NewFHIRPatient builds the Patient resource of a stored patient.
func NewFHIRPatient(patient entities.Patient) (FHIRPatientResource, error) {
	if patient.Name == "" {
		return FHIRPatientResource{}, fmt.Errorf("patient name is required for FHIR mapping")
	}

	resource := FHIRPatientResource{
		ResourceType: "Patient",
		ID:           patient.PatientID,
		Name:         []FHIRHumanName{splitName(patient.Name)},
		Gender:       mapGender(patient.Gender),
	}
	if patient.Phone != "" {
		resource.Telecom = []FHIRContactPoint{{System: "phone", Value: patient.Phone}}
	}
	if patient.Address != "" {
		resource.Address = []FHIRAddress{{Use: "home", Text: patient.Address}}
	}
	return resource, nil
}

// MapPatientToFHIR converts a Patient entity to an indented FHIR Patient JSON document.
func MapPatientToFHIR(patient entities.Patient) (json.RawMessage, error) {
	resource, err := NewFHIRPatient(patient)
	if err != nil {
		return nil, err
	}
	rawJSON, err := json.MarshalIndent(resource, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshalling FHIR patient resource to JSON: %w", err)
	}
	return rawJSON, nil
}

// splitName treats the last word as the family name.
func splitName(full string) FHIRHumanName {
	name := FHIRHumanName{Use: "official", Text: full}
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
	case 1:
		name.Given = parts
	default:
		name.Given = parts[:len(parts)-1]
		name.Family = parts[len(parts)-1]
	}
	return name
}

func mapGender(gender string) FHIRPatientGender {
	switch strings.ToLower(gender) {
	case "male":
		return GenderMale
	case "female":
		return GenderFemale
	case "other":
		return GenderOther
	default:
		return GenderUnknown
	}
}
