package middlewares

import (
	"strings"

	"github.com/Avidasevi/surebetsistem/helpers"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware verifies the bearer token and stores its claims in
// c.Locals("claims"). Missing token is 401, a bad or expired one 403.
func AuthMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "TOKEN_REQUIRED")
	}

	claims, err := helpers.VerifyToken(parts[1])
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "INVALID_TOKEN")
	}

	c.Locals("claims", claims)
	return c.Next()
}

func AdminOnly(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*helpers.TokenClaims)
	if !ok || !claims.IsAdmin {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "ADMIN_REQUIRED")
	}
	return c.Next()
}
