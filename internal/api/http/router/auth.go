package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/healhub/healhub_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, h *handler.AuthHandler) {
	grp := api.Group("/auth")

	grp.Post("/login", h.Login)
	grp.Post("/logout", h.Logout)
	grp.Get("/session", h.Session)
	grp.Post("/forgot-password", h.ForgotPassword)
	grp.Post("/reset-password", h.ResetPassword)
}
