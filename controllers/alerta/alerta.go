package alerta

import (
	"github.com/Avidasevi/surebetsistem/database"
	"github.com/Avidasevi/surebetsistem/helpers"
	"github.com/Avidasevi/surebetsistem/models"

	"github.com/gofiber/fiber/v2"
)

// ListAlertas returns the caller's ten most recent alerts, including
// broadcast alerts (user_id = 0).
func ListAlertas(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*helpers.TokenClaims)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "INVALID_SESSION")
	}

	var alertas []models.Alerta
	if err := database.DB.
		Where("user_id = ? OR user_id = 0", claims.UserID).
		Order("created_at DESC").
		Limit(10).
		Find(&alertas).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LIST_ALERTAS")
	}

	return helpers.JSONSuccess(c, "Alertas listed", alertas)
}
