package handlers

import (
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/crosspostr/crosspostr/internal/service"
	"github.com/crosspostr/crosspostr/internal/transfer"
)

type TiktokHandler struct {
	s service.TiktokService
}

func NewTiktokHandler(s service.TiktokService) *TiktokHandler {
	return &TiktokHandler{s: s}
}

// Upload receives a multipart video and pushes it through the upload-init /
// PUT sequence without touching the post store.
func (h *TiktokHandler) Upload(c *fiber.Ctx) error {
	auth := &transfer.TiktokAuth{
		AccessToken:  c.FormValue("access_token"),
		AdvertiserID: c.FormValue("advertiser_id"),
	}
	if auth.AccessToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "TikTok access token required",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Video file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read video file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read video file",
		})
	}

	videoID, err := h.s.Upload(c.Context(), data, c.FormValue("title"), c.FormValue("description"), auth)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Video uploaded successfully",
		"video_id": videoID,
	})
}

func (h *TiktokHandler) Publish(c *fiber.Ctx) error {
	auth := &transfer.TiktokAuth{
		AccessToken:  c.Query("access_token"),
		AdvertiserID: c.Query("advertiser_id"),
	}
	if auth.AccessToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "TikTok access token required",
		})
	}

	videoID := c.Params("video_id")
	itemID, err := h.s.PublishVideo(c.Context(), videoID, c.Query("privacy_level"), auth)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Video published successfully",
		"video_id": videoID,
		"item_id":  itemID,
	})
}

func (h *TiktokHandler) Analytics(c *fiber.Ctx) error {
	auth := &transfer.TiktokAuth{
		AccessToken:  c.Query("access_token"),
		AdvertiserID: c.Query("advertiser_id"),
	}
	if auth.AccessToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "TikTok access token required",
		})
	}

	snapshot, err := h.s.FetchMetrics(c.Context(), c.Params("video_id"), auth)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(snapshot)
}
