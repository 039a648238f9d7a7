package repo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/pkg/supabase"
)

const patientsTable = "patients"

type Patients struct {
	client *supabase.Client
}

func NewPatients(client *supabase.Client) *Patients {
	return &Patients{client: client}
}

func (r *Patients) List(ctx context.Context, limit, offset int) ([]entity.Patient, error) {
	return supabase.Select[entity.Patient](ctx, r.client, patientsTable,
		fmt.Sprintf("select=*&order=created_at.desc&limit=%d&offset=%d", limit, offset))
}

func (r *Patients) GetByID(ctx context.Context, patientID int) (*entity.Patient, error) {
	rows, err := supabase.Select[entity.Patient](ctx, r.client, patientsTable,
		fmt.Sprintf("patient_id=eq.%d&limit=1", patientID))
	if err != nil {
		return nil, err
	}
	return first(rows), nil
}

func (r *Patients) SearchByName(ctx context.Context, q string, limit int) ([]entity.Patient, error) {
	return supabase.Select[entity.Patient](ctx, r.client, patientsTable,
		fmt.Sprintf("full_name=ilike.*%s*&limit=%d", url.QueryEscape(q), limit))
}
