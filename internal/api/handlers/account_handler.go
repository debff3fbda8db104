package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/crosspostr/crosspostr/internal/models"
	"github.com/crosspostr/crosspostr/internal/service"
	"github.com/crosspostr/crosspostr/internal/transfer"
)

type AccountHandler struct {
	s service.SocialAccountService
}

func NewAccountHandler(s service.SocialAccountService) *AccountHandler {
	return &AccountHandler{s: s}
}

func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var input transfer.SocialAccountCreate
	if err := c.BodyParser(&input); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	account, err := h.s.Create(c.Context(), &input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(account)
}

func (h *AccountHandler) List(c *fiber.Ctx) error {
	accounts, err := h.s.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if accounts == nil {
		accounts = []*models.SocialAccount{}
	}

	return c.Status(fiber.StatusOK).JSON(accounts)
}

func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	if err := h.s.Remove(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account deleted successfully",
	})
}
