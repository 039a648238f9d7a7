package entity

import (
	"time"

	"cloud.google.com/go/civil"
)

// Appointment statuses a doctor can set.
const (
	AppointmentConfirmed = "Confirmed"
	AppointmentCancelled = "Cancelled"
)

type Appointment struct {
	AppointmentID     int        `json:"appointment_id"`
	PatientID         *int       `json:"patient_id,omitempty"`
	DoctorID          *int       `json:"doctor_id,omitempty"`
	AppointmentDate   civil.Date `json:"appointment_date"`
	AppointmentTime   civil.Time `json:"appointment_time"`
	Status            *string    `json:"status,omitempty"`
	Symptoms          *string    `json:"symptoms,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	CheckedByDoctorAt *time.Time `json:"checked_by_doctor_at,omitempty"`
	BookedAt          *time.Time `json:"booked_at,omitempty"`
}

// UpdateAppointment is the patch applied when a doctor accepts or
// rejects. Notes is always sent: acceptance clears it, rejection may
// carry a free-text reason.
type UpdateAppointment struct {
	Status            string     `json:"status"`
	CheckedByDoctorAt *time.Time `json:"checked_by_doctor_at"`
	Notes             *string    `json:"notes"`
}
