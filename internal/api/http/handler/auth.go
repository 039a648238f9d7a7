package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/healhub/healhub_backend/internal/service/auth"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" || body.Password == "" {
		return badRequest(c, "email and password are required")
	}

	user, err := h.svc.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, user)
}

// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if err := h.svc.Logout(c.Context()); err != nil {
		return fail(c, err)
	}
	return noContent(c)
}

// GET /api/v1/auth/session
func (h *AuthHandler) Session(c fiber.Ctx) error {
	user, err := h.svc.CurrentUser(c.Context())
	if err != nil {
		return fail(c, err)
	}
	// user is nil when nobody is logged in; the shell treats that as a
	// signed-out state, not an error.
	return ok(c, user)
}

// POST /api/v1/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" {
		return badRequest(c, "email is required")
	}

	if err := h.svc.ForgotPassword(c.Context(), body.Email); err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.Map{"message": "if the email is registered, a reset code has been sent"})
}

// POST /api/v1/auth/reset-password
func (h *AuthHandler) ResetPassword(c fiber.Ctx) error {
	var body struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" || body.Code == "" || body.NewPassword == "" {
		return badRequest(c, "email, code and new_password are required")
	}

	if err := h.svc.ResetPassword(c.Context(), body.Email, body.Code, body.NewPassword); err != nil {
		return fail(c, err)
	}

	return noContent(c)
}
