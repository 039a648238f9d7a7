package entity

import (
	"encoding/json"
	"time"

	"cloud.google.com/go/civil"
)

// PatientMedication is a row of the patient_medications table.
// SpecificTimes has caller-defined shape, so it stays opaque JSON.
type PatientMedication struct {
	MedicationID   int             `json:"medication_id"`
	PatientID      *int            `json:"patient_id,omitempty"`
	DoctorID       *int            `json:"doctor_id,omitempty"`
	MedicineName   string          `json:"medicine_name"`
	Dosage         string          `json:"dosage"`
	Frequency      *string         `json:"frequency,omitempty"`
	TimesPerDay    *int            `json:"times_per_day,omitempty"`
	SpecificTimes  json.RawMessage `json:"specific_times,omitempty"`
	StartDate      civil.Date      `json:"start_date"`
	EndDate        *civil.Date     `json:"end_date,omitempty"`
	NextClinicDate civil.Date      `json:"next_clinic_date"`
	IsActive       *bool           `json:"is_active,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	PrescribedAt   *time.Time      `json:"prescribed_at,omitempty"`
}

type NewPatientMedication struct {
	PatientID      int             `json:"patient_id"`
	DoctorID       int             `json:"doctor_id"`
	MedicineName   string          `json:"medicine_name"`
	Dosage         string          `json:"dosage"`
	Frequency      string          `json:"frequency"`
	TimesPerDay    int             `json:"times_per_day"`
	SpecificTimes  json.RawMessage `json:"specific_times,omitempty"`
	StartDate      civil.Date      `json:"start_date"`
	EndDate        *civil.Date     `json:"end_date,omitempty"`
	NextClinicDate civil.Date      `json:"next_clinic_date"`
	IsActive       bool            `json:"is_active"`
	Notes          *string         `json:"notes,omitempty"`
}
