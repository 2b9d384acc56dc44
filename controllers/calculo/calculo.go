package calculo

import (
	"encoding/json"

	"github.com/Avidasevi/surebetsistem/database"
	"github.com/Avidasevi/surebetsistem/helpers"
	"github.com/Avidasevi/surebetsistem/models"
	"github.com/Avidasevi/surebetsistem/surebet"

	"github.com/gofiber/fiber/v2"
)

type CreateCalculoRequest struct {
	Tipo         string    `json:"tipo"`
	Odds         []float64 `json:"odds"`
	Stake        float64   `json:"stake"`
	TargetProfit *float64  `json:"target_profit"`
}

// CreateCalculo runs the arbitrage calculator and persists input and
// result for the caller's history.
func CreateCalculo(c *fiber.Ctx) error {
	var req CreateCalculoRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	claims, ok := c.Locals("claims").(*helpers.TokenClaims)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "INVALID_SESSION")
	}

	var (
		calc *surebet.Calculation
		err  error
	)
	if req.TargetProfit != nil {
		calc, err = surebet.EvaluateTargetProfit(req.Odds, req.Stake, *req.TargetProfit)
	} else {
		calc, err = surebet.Evaluate(req.Odds, req.Stake)
	}
	if err != nil {
		return helpers.JSONError(c, err.Error())
	}

	oddsJSON, _ := json.Marshal(req.Odds)
	resultJSON, _ := json.Marshal(calc)

	registro := models.Calculo{
		UserID:    claims.UserID,
		Tipo:      req.Tipo,
		Odds:      oddsJSON,
		Stake:     req.Stake,
		Resultado: resultJSON,
	}
	if err := database.DB.Create(&registro).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_SAVE_CALCULO")
	}

	return helpers.JSONSuccess(c, "Calculo saved", fiber.Map{
		"id":        registro.ID,
		"resultado": calc,
		"stakes":    surebet.RoundStakes(calc.Stakes),
	})
}

func ListCalculos(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*helpers.TokenClaims)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "INVALID_SESSION")
	}

	var calculos []models.Calculo
	if err := database.DB.
		Where("user_id = ?", claims.UserID).
		Order("created_at DESC").
		Limit(50).
		Find(&calculos).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LIST_CALCULOS")
	}

	return helpers.JSONSuccess(c, "Calculos listed", calculos)
}
