package dashboard

import (
	"github.com/Avidasevi/surebetsistem/database"
	"github.com/Avidasevi/surebetsistem/helpers"
	"github.com/Avidasevi/surebetsistem/models"

	"github.com/gofiber/fiber/v2"
)

type chartBucket struct {
	Date   string  `json:"date"`
	Lucro  float64 `json:"lucro"`
	Volume float64 `json:"volume"`
}

// Charts returns the caller's profit and volume bucketed by month.
func Charts(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*helpers.TokenClaims)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "INVALID_SESSION")
	}

	var apostas []models.Aposta
	if err := database.DB.
		Joins("JOIN bancas ON bancas.id = apostas.banca_id").
		Where("bancas.user_id = ?", claims.UserID).
		Order("apostas.data_aposta").
		Find(&apostas).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LOAD_CHARTS")
	}

	var evolution []chartBucket
	index := map[string]int{}
	for _, a := range apostas {
		month := a.DataAposta.Format("2006-01")
		if i, ok := index[month]; ok {
			evolution[i].Lucro += a.Lucro
			evolution[i].Volume += a.ValorApostado
			continue
		}
		index[month] = len(evolution)
		evolution = append(evolution, chartBucket{Date: month, Lucro: a.Lucro, Volume: a.ValorApostado})
	}

	if evolution == nil {
		evolution = []chartBucket{}
	}
	return helpers.JSONSuccess(c, "Charts loaded", fiber.Map{
		"evolution":    evolution,
		"distribution": []any{},
	})
}
