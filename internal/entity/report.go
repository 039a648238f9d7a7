package entity

import "time"

// MedicalReport is anchored to either an appointment or a clinic
// participation, never both mandatorily.
type MedicalReport struct {
	ReportID          int        `json:"report_id"`
	AppointmentID     *int       `json:"appointment_id,omitempty"`
	ClinicID          *int       `json:"clinic_id,omitempty"`
	Diagnosis         string     `json:"diagnosis"`
	Prescription      string     `json:"prescription"`
	Notes             *string    `json:"notes,omitempty"`
	CreatedByDoctorID *int       `json:"created_by_doctor_id,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
}

// PrescriptionRecord follows the same anchoring rule as MedicalReport.
type PrescriptionRecord struct {
	PrescriptionID       int        `json:"prescription_id"`
	AppointmentID        *int       `json:"appointment_id,omitempty"`
	ClinicID             *int       `json:"clinic_id,omitempty"`
	PrescriptionText     string     `json:"prescription_text"`
	PrescribedByDoctorID *int       `json:"prescribed_by_doctor_id,omitempty"`
	CreatedAt            *time.Time `json:"created_at,omitempty"`
}
