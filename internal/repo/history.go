package repo

import (
	"context"
	"fmt"

	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/pkg/supabase"
)

const historyTable = "patient_doctor_history"

type History struct {
	client *supabase.Client
}

func NewHistory(client *supabase.Client) *History {
	return &History{client: client}
}

func (r *History) ListForPatient(ctx context.Context, patientID, limit int) ([]entity.PatientDoctorHistory, error) {
	return supabase.Select[entity.PatientDoctorHistory](ctx, r.client, historyTable,
		fmt.Sprintf("patient_id=eq.%d&order=recorded_at.desc&limit=%d", patientID, limit))
}

func (r *History) Insert(ctx context.Context, row entity.NewPatientDoctorHistory) (*entity.PatientDoctorHistory, error) {
	rows, err := supabase.Insert[entity.PatientDoctorHistory](ctx, r.client, historyTable,
		[]entity.NewPatientDoctorHistory{row})
	if err != nil {
		return nil, err
	}
	return exactlyOne(rows, "history insert")
}
