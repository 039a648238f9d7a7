package doctor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/pkg/apperr"
	"github.com/healhub/healhub_backend/pkg/session"
)

type fakePatients struct {
	byID   map[int]entity.Patient
	listed []entity.Patient
}

func (f *fakePatients) List(_ context.Context, limit, offset int) ([]entity.Patient, error) {
	return f.listed, nil
}

func (f *fakePatients) GetByID(_ context.Context, patientID int) (*entity.Patient, error) {
	p, ok := f.byID[patientID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePatients) SearchByName(_ context.Context, q string, limit int) ([]entity.Patient, error) {
	return f.listed, nil
}

type fakeAppointments struct {
	forPatient []entity.Appointment
	forDoctor  []entity.Appointment
	err        error

	patches map[int]entity.UpdateAppointment
}

func (f *fakeAppointments) ListForDoctor(_ context.Context, doctorID, limit, offset int) ([]entity.Appointment, error) {
	return f.forDoctor, f.err
}

func (f *fakeAppointments) ListForPatient(_ context.Context, patientID, limit int) ([]entity.Appointment, error) {
	return f.forPatient, f.err
}

func (f *fakeAppointments) Update(_ context.Context, appointmentID int, patch entity.UpdateAppointment) (*entity.Appointment, error) {
	if f.patches == nil {
		f.patches = map[int]entity.UpdateAppointment{}
	}
	f.patches[appointmentID] = patch
	return &entity.Appointment{AppointmentID: appointmentID, Status: &patch.Status}, nil
}

type fakeClinics struct {
	rows []entity.ClinicParticipation
	err  error
}

func (f *fakeClinics) ListForPatient(_ context.Context, patientID, limit int) ([]entity.ClinicParticipation, error) {
	return f.rows, f.err
}

type fakeMedications struct {
	rows     []entity.PatientMedication
	inserted []entity.NewPatientMedication
}

func (f *fakeMedications) ListForPatient(_ context.Context, patientID, limit int) ([]entity.PatientMedication, error) {
	return f.rows, nil
}

func (f *fakeMedications) Insert(_ context.Context, row entity.NewPatientMedication) (*entity.PatientMedication, error) {
	f.inserted = append(f.inserted, row)
	return &entity.PatientMedication{
		MedicationID:   len(f.inserted),
		MedicineName:   row.MedicineName,
		Dosage:         row.Dosage,
		StartDate:      row.StartDate,
		NextClinicDate: row.NextClinicDate,
	}, nil
}

type fakeHistory struct {
	rows     []entity.PatientDoctorHistory
	inserted []entity.NewPatientDoctorHistory
}

func (f *fakeHistory) ListForPatient(_ context.Context, patientID, limit int) ([]entity.PatientDoctorHistory, error) {
	return f.rows, nil
}

func (f *fakeHistory) Insert(_ context.Context, row entity.NewPatientDoctorHistory) (*entity.PatientDoctorHistory, error) {
	f.inserted = append(f.inserted, row)
	return &entity.PatientDoctorHistory{
		HistoryID:     len(f.inserted),
		EncounterType: row.EncounterType,
		EncounterDate: row.EncounterDate,
		EncounterTime: row.EncounterTime,
		Notes:         row.Notes,
	}, nil
}

// fakeReports records the id sets each leg was asked for.
type fakeReports struct {
	reportsByAppt   []entity.MedicalReport
	reportsByClinic []entity.MedicalReport
	rxByAppt        []entity.PrescriptionRecord
	rxByClinic      []entity.PrescriptionRecord

	mu          sync.Mutex
	apptCalls   [][]int
	clinicCalls [][]int
}

func (f *fakeReports) recordAppt(ids []int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.apptCalls = append(f.apptCalls, ids)
}

func (f *fakeReports) recordClinic(ids []int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clinicCalls = append(f.clinicCalls, ids)
}

func (f *fakeReports) MedicalReportsForAppointments(_ context.Context, ids []int) ([]entity.MedicalReport, error) {
	f.recordAppt(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	return f.reportsByAppt, nil
}

func (f *fakeReports) MedicalReportsForClinics(_ context.Context, ids []int) ([]entity.MedicalReport, error) {
	f.recordClinic(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	return f.reportsByClinic, nil
}

func (f *fakeReports) PrescriptionsForAppointments(_ context.Context, ids []int) ([]entity.PrescriptionRecord, error) {
	f.recordAppt(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	return f.rxByAppt, nil
}

func (f *fakeReports) PrescriptionsForClinics(_ context.Context, ids []int) ([]entity.PrescriptionRecord, error) {
	f.recordClinic(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	return f.rxByClinic, nil
}

type fixture struct {
	patients     *fakePatients
	appointments *fakeAppointments
	clinics      *fakeClinics
	medications  *fakeMedications
	history      *fakeHistory
	reports      *fakeReports
	svc          *doctorService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		patients: &fakePatients{byID: map[int]entity.Patient{
			1: {PatientID: 1, FullName: "Asha Rahimi", Phone: "0912"},
		}},
		appointments: &fakeAppointments{},
		clinics:      &fakeClinics{},
		medications:  &fakeMedications{},
		history:      &fakeHistory{},
		reports:      &fakeReports{},
	}

	role := string(session.RoleDoctor)
	sess := session.NewStore()
	sess.Set(entity.User{UserID: uuid.New(), Email: "doc@healhub.test", Role: &role})

	f.svc = New(f.patients, f.appointments, f.clinics, f.medications,
		f.history, f.reports, sess).(*doctorService)
	f.svc.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	return f
}

func intPtr(n int) *int { return &n }

func TestDoctorOpsRequireDoctorRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	role := "admin"
	sess := session.NewStore()
	sess.Set(entity.User{UserID: uuid.New(), Role: &role})
	svc := New(f.patients, f.appointments, f.clinics, f.medications,
		f.history, f.reports, sess)

	if _, err := svc.ListPatients(ctx, 10, 0); apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Errorf("ListPatients kind = %v, want unauthorized", apperr.KindOf(err))
	}
	if _, err := svc.GetPatientOverview(ctx, 1); apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Errorf("GetPatientOverview kind = %v, want unauthorized", apperr.KindOf(err))
	}
	if _, err := svc.AcceptAppointment(ctx, 1); apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Errorf("AcceptAppointment kind = %v, want unauthorized", apperr.KindOf(err))
	}
	if len(f.appointments.patches) != 0 {
		t.Error("gated operation reached the store")
	}
}

func TestGetPatientOverviewUnknownPatient(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetPatientOverview(context.Background(), 999)
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("error = %v, want ErrPatientNotFound", err)
	}
}

func TestGetPatientOverviewDedupsSharedRecords(t *testing.T) {
	f := newFixture(t)
	f.appointments.forPatient = []entity.Appointment{{AppointmentID: 10}, {AppointmentID: 11}}
	f.clinics.rows = []entity.ClinicParticipation{{ClinicID: 20}}

	// Report 7 is anchored to both appointment 10 and clinic 20, so it
	// comes back on both legs and must survive exactly once.
	f.reports.reportsByAppt = []entity.MedicalReport{
		{ReportID: 7, AppointmentID: intPtr(10), ClinicID: intPtr(20), Diagnosis: "flu"},
		{ReportID: 9, AppointmentID: intPtr(11), Diagnosis: "checkup"},
	}
	f.reports.reportsByClinic = []entity.MedicalReport{
		{ReportID: 7, AppointmentID: intPtr(10), ClinicID: intPtr(20), Diagnosis: "flu"},
		{ReportID: 3, ClinicID: intPtr(20), Diagnosis: "followup"},
	}
	f.reports.rxByAppt = []entity.PrescriptionRecord{
		{PrescriptionID: 5, AppointmentID: intPtr(10), PrescriptionText: "amoxicillin"},
	}
	f.reports.rxByClinic = []entity.PrescriptionRecord{
		{PrescriptionID: 5, AppointmentID: intPtr(10), PrescriptionText: "amoxicillin"},
	}

	ov, err := f.svc.GetPatientOverview(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetPatientOverview() error = %v", err)
	}

	if ov.Patient.FullName != "Asha Rahimi" {
		t.Errorf("patient = %+v", ov.Patient)
	}
	if len(ov.Reports) != 3 {
		t.Fatalf("reports = %d rows, want 3 after dedup", len(ov.Reports))
	}
	for i, want := range []int{3, 7, 9} {
		if ov.Reports[i].ReportID != want {
			t.Errorf("reports[%d].ReportID = %d, want %d", i, ov.Reports[i].ReportID, want)
		}
	}
	if len(ov.Prescriptions) != 1 || ov.Prescriptions[0].PrescriptionID != 5 {
		t.Errorf("prescriptions = %+v, want the single deduped record", ov.Prescriptions)
	}
}

func TestGetPatientOverviewNoEncounters(t *testing.T) {
	f := newFixture(t)
	// No appointments, no clinics: the record legs see empty id sets
	// (which the store resolves without a fetch) and the overview stays
	// empty rather than erroring.

	ov, err := f.svc.GetPatientOverview(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetPatientOverview() error = %v", err)
	}
	for _, ids := range append(f.reports.apptCalls, f.reports.clinicCalls...) {
		if len(ids) != 0 {
			t.Errorf("record leg received ids %v, want empty set", ids)
		}
	}
	if len(ov.Reports) != 0 || len(ov.Prescriptions) != 0 {
		t.Errorf("overview fabricated records: %+v", ov)
	}
}

func TestGetPatientOverviewSubFetchFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.clinics.err = apperr.Transport("record store returned 503", nil)

	_, err := f.svc.GetPatientOverview(context.Background(), 1)
	if apperr.KindOf(err) != apperr.KindTransport {
		t.Errorf("error = %v, want transport kind surfaced", err)
	}
}

func TestAcceptAppointment(t *testing.T) {
	f := newFixture(t)

	updated, err := f.svc.AcceptAppointment(context.Background(), 42)
	if err != nil {
		t.Fatalf("AcceptAppointment() error = %v", err)
	}
	if *updated.Status != entity.AppointmentConfirmed {
		t.Errorf("status = %s", *updated.Status)
	}

	patch := f.appointments.patches[42]
	if patch.Status != entity.AppointmentConfirmed {
		t.Errorf("patch status = %s", patch.Status)
	}
	if patch.CheckedByDoctorAt == nil || !patch.CheckedByDoctorAt.Equal(f.svc.now()) {
		t.Errorf("patch stamp = %v, want frozen now", patch.CheckedByDoctorAt)
	}
	if patch.Notes != nil {
		t.Errorf("acceptance must clear notes, got %q", *patch.Notes)
	}
}

func TestRejectAppointment(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.RejectAppointment(context.Background(), 42, "double booking"); err != nil {
		t.Fatalf("RejectAppointment() error = %v", err)
	}

	patch := f.appointments.patches[42]
	if patch.Status != entity.AppointmentCancelled {
		t.Errorf("patch status = %s", patch.Status)
	}
	if patch.Notes == nil || *patch.Notes != "double booking" {
		t.Errorf("patch notes = %v, want the rejection reason", patch.Notes)
	}
	if patch.CheckedByDoctorAt == nil {
		t.Error("rejection must stamp the review time")
	}
}

func TestAddMedicationDefaultsNextClinicDate(t *testing.T) {
	f := newFixture(t)

	row := entity.NewPatientMedication{
		PatientID:    1,
		DoctorID:     2,
		MedicineName: "metformin",
		Dosage:       "500mg",
		StartDate:    civil.Date{Year: 2024, Month: time.March, Day: 15},
		IsActive:     true,
	}

	med, err := f.svc.AddMedication(context.Background(), row)
	if err != nil {
		t.Fatalf("AddMedication() error = %v", err)
	}

	want := civil.Date{Year: 2024, Month: time.March, Day: 26}
	if med.NextClinicDate != want {
		t.Errorf("next clinic date = %v, want %v (fourth Tuesday after start)", med.NextClinicDate, want)
	}
}

func TestAddMedicationKeepsExplicitClinicDate(t *testing.T) {
	f := newFixture(t)

	explicit := civil.Date{Year: 2024, Month: time.May, Day: 28}
	row := entity.NewPatientMedication{
		PatientID:      1,
		DoctorID:       2,
		MedicineName:   "metformin",
		Dosage:         "500mg",
		StartDate:      civil.Date{Year: 2024, Month: time.March, Day: 15},
		NextClinicDate: explicit,
	}

	med, err := f.svc.AddMedication(context.Background(), row)
	if err != nil {
		t.Fatalf("AddMedication() error = %v", err)
	}
	if med.NextClinicDate != explicit {
		t.Errorf("next clinic date = %v, want caller's %v", med.NextClinicDate, explicit)
	}
}

func TestRecordPatientVisit(t *testing.T) {
	f := newFixture(t)

	rec, err := f.svc.RecordPatientVisit(context.Background(), 1, 2, "routine follow-up")
	if err != nil {
		t.Fatalf("RecordPatientVisit() error = %v", err)
	}

	if rec.EncounterType != entity.EncounterConsultation {
		t.Errorf("encounter type = %s", rec.EncounterType)
	}
	want := civil.Date{Year: 2024, Month: time.March, Day: 15}
	if rec.EncounterDate != want {
		t.Errorf("encounter date = %v, want %v", rec.EncounterDate, want)
	}
	if rec.EncounterTime == nil || rec.EncounterTime.Hour != 10 || rec.EncounterTime.Minute != 30 {
		t.Errorf("encounter time = %v, want 10:30", rec.EncounterTime)
	}
	if rec.Notes == nil || *rec.Notes != "routine follow-up" {
		t.Errorf("notes = %v", rec.Notes)
	}

	inserted := f.history.inserted[0]
	if inserted.PatientID != 1 || inserted.DoctorID != 2 {
		t.Errorf("inserted row = %+v", inserted)
	}
}
