package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/crosspostr/crosspostr/internal/service"
)

// respondError maps service-layer errors onto the HTTP surface: missing
// records are 404s, bad input is a 400, everything else is a 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrPostNotFound), errors.Is(err, service.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidPayload),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrOAuthCallbackFailed):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
