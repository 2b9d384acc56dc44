package banca

import (
	"github.com/Avidasevi/surebetsistem/database"
	"github.com/Avidasevi/surebetsistem/helpers"
	"github.com/Avidasevi/surebetsistem/models"

	"github.com/gofiber/fiber/v2"
)

type CreateBancaRequest struct {
	Nome           string  `json:"nome"`
	ValorInicial   float64 `json:"valor_inicial"`
	MetaValor      float64 `json:"meta_valor"`
	MetaPercentual float64 `json:"meta_percentual"`
}

func ListBancas(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*helpers.TokenClaims)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "INVALID_SESSION")
	}

	var bancas []models.Banca
	if err := database.DB.
		Where("user_id = ?", claims.UserID).
		Order("created_at DESC").
		Find(&bancas).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LIST_BANCAS")
	}

	return helpers.JSONSuccess(c, "Bancas listed", bancas)
}

func CreateBanca(c *fiber.Ctx) error {
	var req CreateBancaRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	claims, ok := c.Locals("claims").(*helpers.TokenClaims)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "INVALID_SESSION")
	}

	if req.Nome == "" {
		return helpers.JSONError(c, "NOME_REQUIRED")
	}
	if req.ValorInicial <= 0 {
		return helpers.JSONError(c, "VALOR_INICIAL_MUST_BE_POSITIVE")
	}

	banca := models.Banca{
		UserID:         claims.UserID,
		Nome:           req.Nome,
		ValorInicial:   req.ValorInicial,
		SaldoAtual:     req.ValorInicial,
		MetaValor:      req.MetaValor,
		MetaPercentual: req.MetaPercentual,
	}
	if err := database.DB.Create(&banca).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_CREATE_BANCA")
	}

	return helpers.JSONSuccess(c, "Banca created", fiber.Map{"id": banca.ID})
}
