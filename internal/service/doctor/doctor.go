// Package doctor exposes the clinical operations a doctor performs:
// patient lookup, the aggregated patient overview, appointment triage,
// prescriptions and visit records. Every operation is gated on the
// doctor role.
package doctor

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"golang.org/x/sync/errgroup"

	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/internal/service/scheduling"
	"github.com/healhub/healhub_backend/pkg/session"
)

// overviewFetchLimit caps each per-patient fetch inside the overview.
const overviewFetchLimit = 200

type PatientStore interface {
	List(ctx context.Context, limit, offset int) ([]entity.Patient, error)
	GetByID(ctx context.Context, patientID int) (*entity.Patient, error)
	SearchByName(ctx context.Context, q string, limit int) ([]entity.Patient, error)
}

type AppointmentStore interface {
	ListForDoctor(ctx context.Context, doctorID, limit, offset int) ([]entity.Appointment, error)
	ListForPatient(ctx context.Context, patientID, limit int) ([]entity.Appointment, error)
	Update(ctx context.Context, appointmentID int, patch entity.UpdateAppointment) (*entity.Appointment, error)
}

type ClinicStore interface {
	ListForPatient(ctx context.Context, patientID, limit int) ([]entity.ClinicParticipation, error)
}

type MedicationStore interface {
	ListForPatient(ctx context.Context, patientID, limit int) ([]entity.PatientMedication, error)
	Insert(ctx context.Context, row entity.NewPatientMedication) (*entity.PatientMedication, error)
}

type HistoryStore interface {
	ListForPatient(ctx context.Context, patientID, limit int) ([]entity.PatientDoctorHistory, error)
	Insert(ctx context.Context, row entity.NewPatientDoctorHistory) (*entity.PatientDoctorHistory, error)
}

type ReportStore interface {
	MedicalReportsForAppointments(ctx context.Context, appointmentIDs []int) ([]entity.MedicalReport, error)
	MedicalReportsForClinics(ctx context.Context, clinicIDs []int) ([]entity.MedicalReport, error)
	PrescriptionsForAppointments(ctx context.Context, appointmentIDs []int) ([]entity.PrescriptionRecord, error)
	PrescriptionsForClinics(ctx context.Context, clinicIDs []int) ([]entity.PrescriptionRecord, error)
}

// PatientOverview is the assembled clinical picture of one patient. It
// is derived on every call and never stored.
type PatientOverview struct {
	Patient       entity.Patient                `json:"patient"`
	Appointments  []entity.Appointment          `json:"appointments"`
	Medications   []entity.PatientMedication    `json:"medications"`
	Clinics       []entity.ClinicParticipation  `json:"clinics"`
	History       []entity.PatientDoctorHistory `json:"history"`
	Reports       []entity.MedicalReport        `json:"reports"`
	Prescriptions []entity.PrescriptionRecord   `json:"prescriptions"`
}

type Service interface {
	ListPatients(ctx context.Context, limit, offset int) ([]entity.Patient, error)
	SearchPatients(ctx context.Context, q string, limit int) ([]entity.Patient, error)
	GetPatientOverview(ctx context.Context, patientID int) (*PatientOverview, error)
	ListAppointments(ctx context.Context, doctorID, limit, offset int) ([]entity.Appointment, error)
	AcceptAppointment(ctx context.Context, appointmentID int) (*entity.Appointment, error)
	RejectAppointment(ctx context.Context, appointmentID int, reason string) (*entity.Appointment, error)
	AddMedication(ctx context.Context, row entity.NewPatientMedication) (*entity.PatientMedication, error)
	RecordPatientVisit(ctx context.Context, patientID, doctorID int, notes string) (*entity.PatientDoctorHistory, error)
}

type doctorService struct {
	patients     PatientStore
	appointments AppointmentStore
	clinics      ClinicStore
	medications  MedicationStore
	history      HistoryStore
	reports      ReportStore
	session      *session.Store
	now          func() time.Time
}

func New(
	patients PatientStore,
	appointments AppointmentStore,
	clinics ClinicStore,
	medications MedicationStore,
	history HistoryStore,
	reports ReportStore,
	sess *session.Store,
) Service {
	return &doctorService{
		patients:     patients,
		appointments: appointments,
		clinics:      clinics,
		medications:  medications,
		history:      history,
		reports:      reports,
		session:      sess,
		now:          time.Now,
	}
}

func (s *doctorService) ListPatients(ctx context.Context, limit, offset int) ([]entity.Patient, error) {
	if _, err := s.session.Require(session.RoleDoctor); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.patients.List(ctx, limit, offset)
}

func (s *doctorService) SearchPatients(ctx context.Context, q string, limit int) ([]entity.Patient, error) {
	if _, err := s.session.Require(session.RoleDoctor); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	return s.patients.SearchByName(ctx, q, limit)
}

// GetPatientOverview assembles the full clinical picture of one patient.
// The four per-patient fetches run concurrently; the report and
// prescription legs follow once the appointment and clinic ids are
// known. Any failed sub-fetch aborts the whole overview.
func (s *doctorService) GetPatientOverview(ctx context.Context, patientID int) (*PatientOverview, error) {
	if _, err := s.session.Require(session.RoleDoctor); err != nil {
		return nil, err
	}

	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("find patient: %w", err)
	}
	if p == nil {
		return nil, ErrPatientNotFound
	}

	ov := &PatientOverview{Patient: *p}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ov.Appointments, err = s.appointments.ListForPatient(gctx, patientID, overviewFetchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		ov.Medications, err = s.medications.ListForPatient(gctx, patientID, overviewFetchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		ov.Clinics, err = s.clinics.ListForPatient(gctx, patientID, overviewFetchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		ov.History, err = s.history.ListForPatient(gctx, patientID, overviewFetchLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("patient overview: %w", err)
	}

	appointmentIDs := make([]int, 0, len(ov.Appointments))
	for _, a := range ov.Appointments {
		appointmentIDs = append(appointmentIDs, a.AppointmentID)
	}
	clinicIDs := make([]int, 0, len(ov.Clinics))
	for _, c := range ov.Clinics {
		clinicIDs = append(clinicIDs, c.ClinicID)
	}

	var (
		reportsByAppt, reportsByClinic []entity.MedicalReport
		rxByAppt, rxByClinic           []entity.PrescriptionRecord
	)
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reportsByAppt, err = s.reports.MedicalReportsForAppointments(gctx, appointmentIDs)
		return err
	})
	g.Go(func() error {
		var err error
		reportsByClinic, err = s.reports.MedicalReportsForClinics(gctx, clinicIDs)
		return err
	})
	g.Go(func() error {
		var err error
		rxByAppt, err = s.reports.PrescriptionsForAppointments(gctx, appointmentIDs)
		return err
	})
	g.Go(func() error {
		var err error
		rxByClinic, err = s.reports.PrescriptionsForClinics(gctx, clinicIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("patient overview: %w", err)
	}

	// A report anchored to both an appointment and a clinic arrives on
	// both legs; keep one copy, ordered by id.
	ov.Reports = dedupByID(append(reportsByAppt, reportsByClinic...),
		func(r entity.MedicalReport) int { return r.ReportID })
	ov.Prescriptions = dedupByID(append(rxByAppt, rxByClinic...),
		func(r entity.PrescriptionRecord) int { return r.PrescriptionID })

	return ov, nil
}

func dedupByID[T any](rows []T, id func(T) int) []T {
	sort.Slice(rows, func(i, j int) bool { return id(rows[i]) < id(rows[j]) })
	out := rows[:0]
	for i, r := range rows {
		if i == 0 || id(r) != id(out[len(out)-1]) {
			out = append(out, r)
		}
	}
	return out
}

func (s *doctorService) ListAppointments(ctx context.Context, doctorID, limit, offset int) ([]entity.Appointment, error) {
	if _, err := s.session.Require(session.RoleDoctor); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.appointments.ListForDoctor(ctx, doctorID, limit, offset)
}

// AcceptAppointment confirms the appointment, stamps the review time and
// clears any prior note.
func (s *doctorService) AcceptAppointment(ctx context.Context, appointmentID int) (*entity.Appointment, error) {
	if _, err := s.session.Require(session.RoleDoctor); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	return s.appointments.Update(ctx, appointmentID, entity.UpdateAppointment{
		Status:            entity.AppointmentConfirmed,
		CheckedByDoctorAt: &now,
	})
}

// RejectAppointment cancels the appointment, stamps the review time and
// stores the doctor's reason as the note.
func (s *doctorService) RejectAppointment(ctx context.Context, appointmentID int, reason string) (*entity.Appointment, error) {
	if _, err := s.session.Require(session.RoleDoctor); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	patch := entity.UpdateAppointment{
		Status:            entity.AppointmentCancelled,
		CheckedByDoctorAt: &now,
	}
	if reason != "" {
		patch.Notes = &reason
	}
	return s.appointments.Update(ctx, appointmentID, patch)
}

// AddMedication prescribes a medication. A zero next_clinic_date is
// filled in with the next fourth-Tuesday clinic after the start date.
func (s *doctorService) AddMedication(ctx context.Context, row entity.NewPatientMedication) (*entity.PatientMedication, error) {
	if _, err := s.session.Require(session.RoleDoctor); err != nil {
		return nil, err
	}

	if (row.NextClinicDate == civil.Date{}) {
		next, err := scheduling.NextClinicDate(row.StartDate)
		if err != nil {
			return nil, fmt.Errorf("compute next clinic date: %w", err)
		}
		row.NextClinicDate = next
	}

	return s.medications.Insert(ctx, row)
}

// RecordPatientVisit appends a consultation encounter stamped with the
// current date and time.
func (s *doctorService) RecordPatientVisit(ctx context.Context, patientID, doctorID int, notes string) (*entity.PatientDoctorHistory, error) {
	if _, err := s.session.Require(session.RoleDoctor); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	t := civil.TimeOf(now)
	row := entity.NewPatientDoctorHistory{
		PatientID:     patientID,
		DoctorID:      doctorID,
		EncounterType: entity.EncounterConsultation,
		EncounterDate: civil.DateOf(now),
		EncounterTime: &t,
	}
	if notes != "" {
		row.Notes = &notes
	}
	return s.history.Insert(ctx, row)
}
