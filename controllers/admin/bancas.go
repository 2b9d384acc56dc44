package admin

import (
	"github.com/Avidasevi/surebetsistem/database"
	"github.com/Avidasevi/surebetsistem/helpers"
	"github.com/Avidasevi/surebetsistem/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type bancaWithUser struct {
	models.Banca
	UserEmail string `json:"user_email"`
}

func ListBancas(c *fiber.Ctx) error {
	var bancas []bancaWithUser
	if err := database.DB.Model(&models.Banca{}).
		Select("bancas.*, users.email AS user_email").
		Joins("JOIN users ON users.id = bancas.user_id").
		Order("bancas.created_at DESC").
		Scan(&bancas).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LIST_BANCAS")
	}
	return helpers.JSONSuccess(c, "Bancas listed", bancas)
}

// DeleteBanca removes a banca and every aposta logged against it.
func DeleteBanca(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_BANCA_ID")
	}

	var notFound bool
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Banca{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			notFound = true
			return nil
		}
		return tx.Where("banca_id = ?", id).Delete(&models.Aposta{}).Error
	})
	if txErr != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_DELETE_BANCA")
	}
	if notFound {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "BANCA_NOT_FOUND")
	}
	return helpers.JSONSuccess(c, "Banca deleted", nil)
}
