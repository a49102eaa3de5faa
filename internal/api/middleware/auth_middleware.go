package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	config "github.com/lucavs/blog-api/configs"
	"github.com/lucavs/blog-api/internal/service"
	"github.com/lucavs/blog-api/pkg/utils"
)

type AuthMiddleware struct {
	s   service.AuthService
	cfg config.Config
}

func NewAuthMiddleware(cfg config.Config, s service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{s: s, cfg: cfg}
}

// AdminRequired accepts a valid session cookie or, failing that, a
// valid remember-me token.
func (m *AuthMiddleware) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)
		rememberToken := c.Cookies(m.cfg.RememberCookie)

		if tokenString != "" {
			claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString)
			if err == nil {
				c.Locals("user_id", claims.UserID)
				return c.Next()
			}

			c.Cookie(&fiber.Cookie{
				Name:   m.cfg.CookieName,
				Value:  "",
				Path:   "/",
				MaxAge: -1, // Delete cookie
			})
			slog.Info("session token validation failed", "error", err.Error())
		}

		if rememberToken != "" {
			valid, err := m.s.CheckToken(c.Context(), rememberToken)
			if err != nil {
				slog.Info(err.Error())
			}
			if valid {
				c.Locals("user_id", m.cfg.AdminUsername)
				return c.Next()
			}
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}
}
