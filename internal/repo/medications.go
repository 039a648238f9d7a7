package repo

import (
	"context"
	"fmt"

	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/pkg/supabase"
)

const medicationsTable = "patient_medications"

type Medications struct {
	client *supabase.Client
}

func NewMedications(client *supabase.Client) *Medications {
	return &Medications{client: client}
}

func (r *Medications) ListForPatient(ctx context.Context, patientID, limit int) ([]entity.PatientMedication, error) {
	return supabase.Select[entity.PatientMedication](ctx, r.client, medicationsTable,
		fmt.Sprintf("patient_id=eq.%d&order=prescribed_at.desc&limit=%d", patientID, limit))
}

func (r *Medications) Insert(ctx context.Context, row entity.NewPatientMedication) (*entity.PatientMedication, error) {
	rows, err := supabase.Insert[entity.PatientMedication](ctx, r.client, medicationsTable,
		[]entity.NewPatientMedication{row})
	if err != nil {
		return nil, err
	}
	return exactlyOne(rows, "medications insert")
}
