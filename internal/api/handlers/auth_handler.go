package handlers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/lucavs/blog-api/configs"
	"github.com/lucavs/blog-api/internal/service"
	"github.com/lucavs/blog-api/internal/transfer"
	"github.com/lucavs/blog-api/pkg/utils"
)

const sessionDuration = 7 * 24 * time.Hour

type AuthHandler struct {
	cfg config.Config
	s   service.AuthService
}

func NewAuthHandler(cfg config.Config, s service.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, s: s}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req transfer.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse login request",
		})
	}

	if !h.s.Authenticate(req.Username, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	token, err := utils.GenerateToken(h.cfg.SecretKey, req.Username, sessionDuration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionDuration.Seconds()),
		HTTPOnly: true,
	})

	if req.Remember {
		rememberToken, err := h.s.CreatePersistentToken(c.Context(), req.Username)
		if err != nil {
			slog.Info(err.Error())
		} else {
			c.Cookie(&fiber.Cookie{
				Name:     h.cfg.RememberCookie,
				Value:    rememberToken,
				Path:     "/",
				MaxAge:   int((30 * 24 * time.Hour).Seconds()),
				HTTPOnly: true,
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged in",
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if rememberToken := c.Cookies(h.cfg.RememberCookie); rememberToken != "" {
		if err := h.s.RevokeToken(c.Context(), rememberToken); err != nil {
			slog.Info(err.Error())
		}
	}

	for _, name := range []string{h.cfg.CookieName, h.cfg.RememberCookie} {
		c.Cookie(&fiber.Cookie{
			Name:   name,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out",
	})
}
