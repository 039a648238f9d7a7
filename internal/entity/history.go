package entity

import (
	"time"

	"cloud.google.com/go/civil"
)

// EncounterConsultation is the encounter type recorded for an in-person
// doctor visit.
const EncounterConsultation = "Consultation"

type PatientDoctorHistory struct {
	HistoryID     int         `json:"history_id"`
	PatientID     *int        `json:"patient_id,omitempty"`
	DoctorID      *int        `json:"doctor_id,omitempty"`
	EncounterType string      `json:"encounter_type"`
	EncounterDate civil.Date  `json:"encounter_date"`
	EncounterTime *civil.Time `json:"encounter_time,omitempty"`
	Notes         *string     `json:"notes,omitempty"`
	RecordedAt    *time.Time  `json:"recorded_at,omitempty"`
}

type NewPatientDoctorHistory struct {
	PatientID     int         `json:"patient_id"`
	DoctorID      int         `json:"doctor_id"`
	EncounterType string      `json:"encounter_type"`
	EncounterDate civil.Date  `json:"encounter_date"`
	EncounterTime *civil.Time `json:"encounter_time,omitempty"`
	Notes         *string     `json:"notes,omitempty"`
}
