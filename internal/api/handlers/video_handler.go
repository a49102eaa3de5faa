package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/lucavs/blog-api/internal/models"
	"github.com/lucavs/blog-api/internal/service"
)

type VideoHandler struct {
	s service.VideoService
}

func NewVideoHandler(s service.VideoService) *VideoHandler {
	return &VideoHandler{s: s}
}

// UploadVideo is the pre-attach path: upload now, reference the
// returned video_id from a post later.
func (h *VideoHandler) UploadVideo(c *fiber.Ctx) error {
	file, err := formFile(c, "file")
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read video file",
		})
	}
	if file == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file selected",
		})
	}

	videoID, err := h.s.QueueVideo(c.Context(), file.Data, file.Filename, file.ContentType)
	if err != nil {
		if errors.Is(err, models.ErrNotAllowed) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "File type is not allowed",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload video",
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"video_id": videoID,
	})
}

// GetVideo exposes the processing status; callers poll it until the
// video reaches a terminal state.
func (h *VideoHandler) GetVideo(c *fiber.Ctx) error {
	videoID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid video id",
		})
	}

	video, err := h.s.GetVideo(c.Context(), int64(videoID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Video not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve video",
		})
	}

	return c.Status(fiber.StatusOK).JSON(video)
}
