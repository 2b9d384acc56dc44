package admin

import (
	"github.com/Avidasevi/surebetsistem/database"
	"github.com/Avidasevi/surebetsistem/helpers"
	"github.com/Avidasevi/surebetsistem/models"

	"github.com/gofiber/fiber/v2"
)

// Stats returns platform-wide totals for the admin panel.
func Stats(c *fiber.Ctx) error {
	var totalUsers, totalBancas, totalApostas int64
	database.DB.Model(&models.User{}).Count(&totalUsers)
	database.DB.Model(&models.Banca{}).Count(&totalBancas)
	database.DB.Model(&models.Aposta{}).Count(&totalApostas)

	var totals struct {
		VolumeTotal float64
		LucroTotal  float64
	}
	if err := database.DB.Model(&models.Aposta{}).
		Select("COALESCE(SUM(valor_apostado),0) AS volume_total, COALESCE(SUM(lucro),0) AS lucro_total").
		Scan(&totals).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LOAD_STATS")
	}

	return helpers.JSONSuccess(c, "Stats loaded", fiber.Map{
		"total_users":   totalUsers,
		"total_bancas":  totalBancas,
		"total_apostas": totalApostas,
		"volume_total":  totals.VolumeTotal,
		"lucro_total":   totals.LucroTotal,
	})
}
