package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/lucavs/blog-api/internal/models"
	"github.com/lucavs/blog-api/internal/service"
	"github.com/lucavs/blog-api/internal/transfer"
)

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(s service.PostService) *PostHandler {
	return &PostHandler{s: s}
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	pc := transfer.PostCreation{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
		VideoID: formInt64(c.FormValue("video_id")),
	}

	image, err := formFile(c, "image")
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read image file",
		})
	}
	video, err := formFile(c, "video")
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read video file",
		})
	}

	post, err := h.s.CreatePost(c.Context(), &pc, image, video)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Content is required",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create post",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid post id",
		})
	}

	pc := transfer.PostCreation{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
		VideoID: formInt64(c.FormValue("video_id")),
	}

	image, err := formFile(c, "image")
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read image file",
		})
	}
	video, err := formFile(c, "video")
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read video file",
		})
	}

	post, err := h.s.UpdatePost(c.Context(), int64(postID), &pc, image, video)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Post not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update post",
		})
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid post id",
		})
	}

	post, err := h.s.GetPost(c.Context(), int64(postID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Post not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve post",
		})
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	posts, hasNext, err := h.s.ListRecent(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve posts",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts":    posts,
		"has_next": hasNext,
	})
}

func (h *PostHandler) FilterPosts(c *fiber.Ctx) error {
	year := c.Query("year", "any")
	month := c.Query("month", "any")
	day := c.Query("day", "any")
	page := c.QueryInt("page", 1)

	posts, err := h.s.FilterByDate(c.Context(), year, month, day, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to filter posts",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts": posts,
	})
}

func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid post id",
		})
	}

	if err := h.s.DeletePost(c.Context(), int64(postID)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete post",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
