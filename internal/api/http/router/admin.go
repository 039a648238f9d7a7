package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/healhub/healhub_backend/internal/api/http/handler"
)

// Role gating happens inside the admin service on every call, so these
// routes carry no auth middleware of their own.
func (r *Router) registerAdminRoutes(api fiber.Router, h *handler.AdminHandler) {
	grp := api.Group("/admin")

	grp.Get("/users", h.ListUsers)
	grp.Get("/users/counts", h.CountsByRole)
	grp.Patch("/users/:id", h.UpdateUser)
	grp.Delete("/users/:id", h.DeleteUser)
}
