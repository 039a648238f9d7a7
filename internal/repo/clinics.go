package repo

import (
	"context"
	"fmt"

	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/pkg/supabase"
)

const clinicTable = "clinic_participation"

type Clinics struct {
	client *supabase.Client
}

func NewClinics(client *supabase.Client) *Clinics {
	return &Clinics{client: client}
}

func (r *Clinics) ListForPatient(ctx context.Context, patientID, limit int) ([]entity.ClinicParticipation, error) {
	return supabase.Select[entity.ClinicParticipation](ctx, r.client, clinicTable,
		fmt.Sprintf("patient_id=eq.%d&order=clinic_date.desc&limit=%d", patientID, limit))
}
