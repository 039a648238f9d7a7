package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/healhub/healhub_backend/internal/api/http/handler"
)

func (r *Router) registerDoctorRoutes(api fiber.Router, h *handler.DoctorHandler) {
	grp := api.Group("/doctor")

	grp.Get("/patients", h.ListPatients)
	grp.Get("/patients/:id/overview", h.PatientOverview)
	grp.Get("/appointments", h.ListAppointments)
	grp.Post("/appointments/:id/accept", h.AcceptAppointment)
	grp.Post("/appointments/:id/reject", h.RejectAppointment)
	grp.Post("/medications", h.AddMedication)
	grp.Post("/visits", h.RecordVisit)
}
