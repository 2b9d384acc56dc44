package dashboard

import (
	"github.com/Avidasevi/surebetsistem/database"
	"github.com/Avidasevi/surebetsistem/helpers"
	"github.com/Avidasevi/surebetsistem/models"

	"github.com/gofiber/fiber/v2"
)

// Dashboard aggregates totals across the caller's bancas.
func Dashboard(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*helpers.TokenClaims)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "INVALID_SESSION")
	}

	var bancas []models.Banca
	if err := database.DB.Where("user_id = ?", claims.UserID).Find(&bancas).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LOAD_DASHBOARD")
	}

	var saldoTotal, valorInicial float64
	for _, b := range bancas {
		saldoTotal += b.SaldoAtual
		valorInicial += b.ValorInicial
	}
	lucroTotal := saldoTotal - valorInicial

	roi := 0.0
	if valorInicial > 0 {
		roi = lucroTotal / valorInicial * 100
	}

	return helpers.JSONSuccess(c, "Dashboard loaded", fiber.Map{
		"bancas": bancas,
		"resumo": fiber.Map{
			"total_bancas":  len(bancas),
			"saldo_total":   helpers.FormatFloat(saldoTotal, 2),
			"lucro_total":   helpers.FormatFloat(lucroTotal, 2),
			"roi":           helpers.FormatFloat(roi, 2),
			"valor_inicial": helpers.FormatFloat(valorInicial, 2),
		},
	})
}
