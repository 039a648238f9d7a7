package entity

import (
	"time"

	"cloud.google.com/go/civil"
)

// ClinicParticipation is one patient's attendance slot in a recurring
// clinic session.
type ClinicParticipation struct {
	ClinicID   int         `json:"clinic_id"`
	PatientID  *int        `json:"patient_id,omitempty"`
	DoctorID   *int        `json:"doctor_id,omitempty"`
	ClinicDate civil.Date  `json:"clinic_date"`
	StartTime  civil.Time  `json:"start_time"`
	EndTime    *civil.Time `json:"end_time,omitempty"`
	Status     *string     `json:"status,omitempty"`
	Notes      *string     `json:"notes,omitempty"`
	CheckedAt  *time.Time  `json:"checked_at,omitempty"`
	CreatedAt  *time.Time  `json:"created_at,omitempty"`
}
