package entity

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Patient is a row of the patients table, keyed by a numeric id that
// appointments, medications, clinic participation and history reference.
type Patient struct {
	PatientID           int        `json:"patient_id"`
	UserID              *uuid.UUID `json:"user_id,omitempty"`
	FullName            string     `json:"full_name"`
	DOB                 civil.Date `json:"dob"`
	Gender              *string    `json:"gender,omitempty"`
	Phone               string     `json:"phone"`
	Address             *string    `json:"address,omitempty"`
	BloodGroup          *string    `json:"blood_group,omitempty"`
	EmergencyContact    *string    `json:"emergency_contact,omitempty"`
	HasChronicCondition *bool      `json:"has_chronic_condition,omitempty"`
	ConditionNotes      *string    `json:"condition_notes,omitempty"`
	IsPhoneVerified     *bool      `json:"is_phone_verified,omitempty"`
	CreatedAt           *time.Time `json:"created_at,omitempty"`
}
