package repo

import (
	"context"
	"fmt"

	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/pkg/supabase"
)

const appointmentsTable = "appointments"

type Appointments struct {
	client *supabase.Client
}

func NewAppointments(client *supabase.Client) *Appointments {
	return &Appointments{client: client}
}

func (r *Appointments) ListForDoctor(ctx context.Context, doctorID, limit, offset int) ([]entity.Appointment, error) {
	return supabase.Select[entity.Appointment](ctx, r.client, appointmentsTable,
		fmt.Sprintf("doctor_id=eq.%d&order=appointment_date.desc,appointment_time.desc&limit=%d&offset=%d",
			doctorID, limit, offset))
}

func (r *Appointments) ListForPatient(ctx context.Context, patientID, limit int) ([]entity.Appointment, error) {
	return supabase.Select[entity.Appointment](ctx, r.client, appointmentsTable,
		fmt.Sprintf("patient_id=eq.%d&order=appointment_date.desc,appointment_time.desc&limit=%d",
			patientID, limit))
}

func (r *Appointments) Update(ctx context.Context, appointmentID int, patch entity.UpdateAppointment) (*entity.Appointment, error) {
	rows, err := supabase.Update[entity.Appointment](ctx, r.client, appointmentsTable,
		fmt.Sprintf("appointment_id=eq.%d", appointmentID), patch)
	if err != nil {
		return nil, err
	}
	return exactlyOne(rows, "appointments update")
}
