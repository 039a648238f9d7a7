package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/internal/service/doctor"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

// GET /api/v1/doctor/patients
// A non-empty ?q= switches from paged listing to a name search.
func (h *DoctorHandler) ListPatients(c fiber.Ctx) error {
	limit := fiber.Query(c, "limit", 50)

	if q := c.Query("q"); q != "" {
		patients, err := h.svc.SearchPatients(c.Context(), q, limit)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, patients)
	}

	offset := fiber.Query(c, "offset", 0)
	patients, err := h.svc.ListPatients(c.Context(), limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, patients)
}

// GET /api/v1/doctor/patients/:id/overview
func (h *DoctorHandler) PatientOverview(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	overview, err := h.svc.GetPatientOverview(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, overview)
}

// GET /api/v1/doctor/appointments
func (h *DoctorHandler) ListAppointments(c fiber.Ctx) error {
	doctorID := fiber.Query(c, "doctor_id", 0)
	if doctorID <= 0 {
		return badRequest(c, "doctor_id is required")
	}
	limit := fiber.Query(c, "limit", 50)
	offset := fiber.Query(c, "offset", 0)

	appointments, err := h.svc.ListAppointments(c.Context(), doctorID, limit, offset)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, appointments)
}

// POST /api/v1/doctor/appointments/:id/accept
func (h *DoctorHandler) AcceptAppointment(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.AcceptAppointment(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, appt)
}

// POST /api/v1/doctor/appointments/:id/reject
func (h *DoctorHandler) RejectAppointment(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.RejectAppointment(c.Context(), id, body.Reason)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, appt)
}

// POST /api/v1/doctor/medications
func (h *DoctorHandler) AddMedication(c fiber.Ctx) error {
	var row entity.NewPatientMedication
	if err := c.Bind().JSON(&row); err != nil {
		return badRequest(c, "invalid request body")
	}
	if row.PatientID <= 0 || row.DoctorID <= 0 {
		return badRequest(c, "patient_id and doctor_id are required")
	}
	if row.MedicineName == "" || row.Dosage == "" {
		return badRequest(c, "medicine_name and dosage are required")
	}

	med, err := h.svc.AddMedication(c.Context(), row)
	if err != nil {
		return fail(c, err)
	}

	return created(c, med)
}

// POST /api/v1/doctor/visits
func (h *DoctorHandler) RecordVisit(c fiber.Ctx) error {
	var body struct {
		PatientID int    `json:"patient_id"`
		DoctorID  int    `json:"doctor_id"`
		Notes     string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PatientID <= 0 || body.DoctorID <= 0 {
		return badRequest(c, "patient_id and doctor_id are required")
	}

	rec, err := h.svc.RecordPatientVisit(c.Context(), body.PatientID, body.DoctorID, body.Notes)
	if err != nil {
		return fail(c, err)
	}

	return created(c, rec)
}
