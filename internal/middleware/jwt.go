package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/auth"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/models"
)

// JWTProtected validates the Bearer token and stores user_id and user_role
// in the request locals.
func JWTProtected(mgr *auth.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization"})
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization"})
		}
		claims, err := mgr.Verify(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}
		c.Locals("user_id", claims.Subject)
		c.Locals("user_role", claims.Role)
		return c.Next()
	}
}

// AdminOnly must run after JWTProtected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role != string(models.UserTypeAdmin) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
		}
		return c.Next()
	}
}
