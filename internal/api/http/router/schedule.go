package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/healhub/healhub_backend/internal/api/http/handler"
)

func (r *Router) registerScheduleRoutes(api fiber.Router, h *handler.ScheduleHandler) {
	grp := api.Group("/clinic-dates")

	grp.Get("/next", h.NextClinicDate)
	grp.Get("/fourth-tuesday", h.FourthTuesday)
}
