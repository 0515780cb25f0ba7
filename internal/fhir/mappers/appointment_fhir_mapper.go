package mappers

import (
	"time"

	"hospital-management/internal/domain/entities"
)

// FHIRReference points at another resource, e.g. "Patient/<id>".
type FHIRReference struct {
	Reference string `json:"reference"`
}

type FHIRAppointmentParticipant struct {
	Actor  FHIRReference `json:"actor"`
	Status string        `json:"status"`
}

// FHIRAppointmentResource represents a simplified FHIR Appointment resource.
type FHIRAppointmentResource struct {
	ResourceType string                       `json:"resourceType"`
	ID           string                       `json:"id,omitempty"`
	Status       string                       `json:"status"`
	Start        string                       `json:"start,omitempty"`
	Participant  []FHIRAppointmentParticipant `json:"participant"`
}

// NewFHIRAppointment builds the Appointment resource of a stored appointment.
// Start is left empty when date and time do not parse; it is interpreted in loc.
func NewFHIRAppointment(appointment entities.Appointment, loc *time.Location) FHIRAppointmentResource {
	resource := FHIRAppointmentResource{
		ResourceType: "Appointment",
		ID:           appointment.AppointmentID,
		Status:       mapAppointmentStatus(appointment.Status),
		Participant: []FHIRAppointmentParticipant{
			{Actor: FHIRReference{Reference: "Patient/" + appointment.PatientID}, Status: "accepted"},
			{Actor: FHIRReference{Reference: "Practitioner/" + appointment.DoctorID}, Status: "accepted"},
		},
	}
	if loc == nil {
		loc = time.Local
	}
	if start, err := time.ParseInLocation("2006-01-02 15:04", appointment.Date+" "+appointment.Time, loc); err == nil {
		resource.Start = start.Format(time.RFC3339)
	}
	return resource
}

func mapAppointmentStatus(status string) string {
	if status == entities.AppointmentStatusScheduled {
		return "booked"
	}
	return "proposed"
}
