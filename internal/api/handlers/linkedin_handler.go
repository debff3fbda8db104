package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/crosspostr/crosspostr/internal/service"
	"github.com/crosspostr/crosspostr/internal/transfer"
)

type LinkedinHandler struct {
	s service.LinkedinService
}

func NewLinkedinHandler(s service.LinkedinService) *LinkedinHandler {
	return &LinkedinHandler{s: s}
}

func (h *LinkedinHandler) Login(c *fiber.Ctx) error {
	authURL, state, err := h.s.BuildAuthorizationURL()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to build authorization URL",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"authorization_url": authURL,
		"state":             state,
	})
}

func (h *LinkedinHandler) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	state := c.Query("state")

	result, err := h.s.ExchangeCode(c.Context(), code, state)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *LinkedinHandler) Profile(c *fiber.Ctx) error {
	accessToken := c.Query("access_token")
	if accessToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "LinkedIn access token required",
		})
	}

	profile, err := h.s.Profile(c.Context(), accessToken)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *LinkedinHandler) DirectPost(c *fiber.Ctx) error {
	accessToken := c.Query("access_token")
	if accessToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "LinkedIn access token required",
		})
	}

	var input transfer.LinkedinPostRequest
	if err := c.BodyParser(&input); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}
	if input.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Post text is required",
		})
	}

	result := h.s.Publish(c.Context(), input.Text, input.Visibility, accessToken)
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": result.Error,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Posted to LinkedIn successfully",
		"post_id": result.PostID,
	})
}
