package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/internal/service/admin"
)

type AdminHandler struct {
	svc admin.Service
}

func NewAdminHandler(svc admin.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c fiber.Ctx) error {
	limit := fiber.Query(c, "limit", 50)
	offset := fiber.Query(c, "offset", 0)

	users, err := h.svc.ListUsers(c.Context(), limit, offset)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, users)
}

// PATCH /api/v1/admin/users/:id
func (h *AdminHandler) UpdateUser(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var patch entity.UpdateUser
	if err := c.Bind().JSON(&patch); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := h.svc.UpdateUser(c.Context(), id, patch)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, user)
}

// DELETE /api/v1/admin/users/:id
func (h *AdminHandler) DeleteUser(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.DeleteUser(c.Context(), id); err != nil {
		return fail(c, err)
	}

	return noContent(c)
}

// GET /api/v1/admin/users/counts
func (h *AdminHandler) CountsByRole(c fiber.Ctx) error {
	counts, err := h.svc.CountsByRole(c.Context())
	if err != nil {
		return fail(c, err)
	}

	return ok(c, counts)
}
