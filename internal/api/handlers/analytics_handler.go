package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/crosspostr/crosspostr/internal/models"
	"github.com/crosspostr/crosspostr/internal/service"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
}

func NewAnalyticsHandler(s service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: s}
}

func (h *AnalyticsHandler) Create(c *fiber.Ctx) error {
	var snapshot models.Analytics
	if err := c.BodyParser(&snapshot); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}
	if snapshot.PostID == "" || snapshot.Platform == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "post_id and platform are required",
		})
	}

	recorded, err := h.s.Record(c.Context(), &snapshot)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(recorded)
}

func (h *AnalyticsHandler) ForPost(c *fiber.Ctx) error {
	rows, err := h.s.ListForPost(c.Context(), c.Params("post_id"))
	if err != nil {
		return respondError(c, err)
	}
	if rows == nil {
		rows = []*models.Analytics{}
	}

	return c.Status(fiber.StatusOK).JSON(rows)
}

func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.s.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
