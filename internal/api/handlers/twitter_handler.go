package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/crosspostr/crosspostr/internal/service"
	"github.com/crosspostr/crosspostr/internal/transfer"
)

type TwitterHandler struct {
	s service.TwitterService
}

func NewTwitterHandler(s service.TwitterService) *TwitterHandler {
	return &TwitterHandler{s: s}
}

// DirectPost bypasses the post store and tweets immediately with the
// process-level credentials. Adapter errors are surfaced verbatim.
func (h *TwitterHandler) DirectPost(c *fiber.Ctx) error {
	var input transfer.DirectTweetRequest
	if err := c.BodyParser(&input); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}
	if input.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Tweet text is required",
		})
	}

	result := h.s.Publish(c.Context(), input.Text, input.MediaFiles)
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": result.Error,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Tweet posted successfully",
		"tweet_id": result.PostID,
		"metrics":  result.Metrics,
	})
}

func (h *TwitterHandler) Analytics(c *fiber.Ctx) error {
	tweetID := c.Params("id")

	metrics, err := h.s.FetchMetrics(c.Context(), tweetID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"tweet_id": tweetID,
		"metrics":  metrics,
	})
}
