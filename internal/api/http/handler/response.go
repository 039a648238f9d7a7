package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/healhub/healhub_backend/pkg/apperr"
)

func ok(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"data": data})
}

func created(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": data})
}

func noContent(c fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// fail maps a service error to a status by its kind. The body is always
// a single human-readable string; unexpected failures are logged and
// masked.
func fail(c fiber.Ctx, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case apperr.KindValidation:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case apperr.KindTransport:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	case apperr.KindMissingConfig:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	default:
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
