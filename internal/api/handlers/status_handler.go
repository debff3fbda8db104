package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/crosspostr/crosspostr/internal/models"
	"github.com/crosspostr/crosspostr/internal/service"
	"github.com/crosspostr/crosspostr/internal/transfer"
)

type StatusHandler struct {
	s service.StatusCheckService
}

func NewStatusHandler(s service.StatusCheckService) *StatusHandler {
	return &StatusHandler{s: s}
}

func (h *StatusHandler) Root(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Social Media Management Platform API",
	})
}

func (h *StatusHandler) Create(c *fiber.Ctx) error {
	var input transfer.StatusCheckCreate
	if err := c.BodyParser(&input); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	check, err := h.s.Create(c.Context(), &input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(check)
}

func (h *StatusHandler) List(c *fiber.Ctx) error {
	checks, err := h.s.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if checks == nil {
		checks = []*models.StatusCheck{}
	}

	return c.Status(fiber.StatusOK).JSON(checks)
}
