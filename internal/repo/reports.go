package repo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/pkg/supabase"
)

const (
	reportsTable       = "medical_reports"
	prescriptionsTable = "prescription_records"
)

// Reports reads the two encounter-anchored record types. An empty id set
// short-circuits to an empty result without touching the network.
type Reports struct {
	client *supabase.Client
}

func NewReports(client *supabase.Client) *Reports {
	return &Reports{client: client}
}

func (r *Reports) MedicalReportsForAppointments(ctx context.Context, appointmentIDs []int) ([]entity.MedicalReport, error) {
	if len(appointmentIDs) == 0 {
		return nil, nil
	}
	return supabase.Select[entity.MedicalReport](ctx, r.client, reportsTable,
		fmt.Sprintf("appointment_id=in.(%s)&order=created_at.desc", intList(appointmentIDs)))
}

func (r *Reports) MedicalReportsForClinics(ctx context.Context, clinicIDs []int) ([]entity.MedicalReport, error) {
	if len(clinicIDs) == 0 {
		return nil, nil
	}
	return supabase.Select[entity.MedicalReport](ctx, r.client, reportsTable,
		fmt.Sprintf("clinic_id=in.(%s)&order=created_at.desc", intList(clinicIDs)))
}

func (r *Reports) PrescriptionsForAppointments(ctx context.Context, appointmentIDs []int) ([]entity.PrescriptionRecord, error) {
	if len(appointmentIDs) == 0 {
		return nil, nil
	}
	return supabase.Select[entity.PrescriptionRecord](ctx, r.client, prescriptionsTable,
		fmt.Sprintf("appointment_id=in.(%s)&order=created_at.desc", intList(appointmentIDs)))
}

func (r *Reports) PrescriptionsForClinics(ctx context.Context, clinicIDs []int) ([]entity.PrescriptionRecord, error) {
	if len(clinicIDs) == 0 {
		return nil, nil
	}
	return supabase.Select[entity.PrescriptionRecord](ctx, r.client, prescriptionsTable,
		fmt.Sprintf("clinic_id=in.(%s)&order=created_at.desc", intList(clinicIDs)))
}

func intList(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
