package admin

import (
	"github.com/Avidasevi/surebetsistem/database"
	"github.com/Avidasevi/surebetsistem/helpers"
	"github.com/Avidasevi/surebetsistem/models"

	"github.com/gofiber/fiber/v2"
)

type apostaWithOwner struct {
	models.Aposta
	BancaNome string `json:"banca_nome"`
	UserEmail string `json:"user_email"`
}

func ListApostas(c *fiber.Ctx) error {
	var apostas []apostaWithOwner
	if err := database.DB.Model(&models.Aposta{}).
		Select("apostas.*, bancas.nome AS banca_nome, users.email AS user_email").
		Joins("JOIN bancas ON bancas.id = apostas.banca_id").
		Joins("JOIN users ON users.id = bancas.user_id").
		Order("apostas.created_at DESC").
		Limit(100).
		Scan(&apostas).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LIST_APOSTAS")
	}
	return helpers.JSONSuccess(c, "Apostas listed", apostas)
}

// DeleteAposta removes the bet record only; the banca balance keeps the
// lucro the bet already applied.
func DeleteAposta(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_APOSTA_ID")
	}

	res := database.DB.Delete(&models.Aposta{}, id)
	if res.Error != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_DELETE_APOSTA")
	}
	if res.RowsAffected == 0 {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "APOSTA_NOT_FOUND")
	}
	return helpers.JSONSuccess(c, "Aposta deleted", nil)
}
