package aposta

import (
	"errors"
	"time"

	"github.com/Avidasevi/surebetsistem/database"
	"github.com/Avidasevi/surebetsistem/helpers"
	"github.com/Avidasevi/surebetsistem/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateApostaRequest struct {
	BancaID       uint    `json:"banca_id"`
	DataAposta    string  `json:"data_aposta"`
	ValorApostado float64 `json:"valor_apostado"`
	CasaAposta    string  `json:"casa_aposta"`
	TipoAposta    string  `json:"tipo_aposta"`
	Odd           float64 `json:"odd"`
	Resultado     string  `json:"resultado"`
	ValorRecebido float64 `json:"valor_recebido"`
}

type apostaWithBanca struct {
	models.Aposta
	BancaNome string `json:"banca_nome"`
}

func ListApostas(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*helpers.TokenClaims)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "INVALID_SESSION")
	}

	var apostas []apostaWithBanca
	if err := database.DB.Model(&models.Aposta{}).
		Select("apostas.*, bancas.nome AS banca_nome").
		Joins("JOIN bancas ON bancas.id = apostas.banca_id").
		Where("bancas.user_id = ?", claims.UserID).
		Order("apostas.data_aposta DESC").
		Scan(&apostas).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LIST_APOSTAS")
	}

	return helpers.JSONSuccess(c, "Apostas listed", apostas)
}

// CreateAposta logs a bet and applies its lucro to the owning banca.
// Insert and balance update run in one transaction with the banca row
// locked, so concurrent bets against the same banca cannot lose updates.
func CreateAposta(c *fiber.Ctx) error {
	var req CreateApostaRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	claims, ok := c.Locals("claims").(*helpers.TokenClaims)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "INVALID_SESSION")
	}

	if req.ValorApostado <= 0 {
		return helpers.JSONError(c, "VALOR_APOSTADO_MUST_BE_POSITIVE")
	}
	if req.ValorRecebido < 0 {
		return helpers.JSONError(c, "VALOR_RECEBIDO_MUST_BE_NON_NEGATIVE")
	}
	if req.Odd <= 1.0 {
		return helpers.JSONError(c, "ODD_MUST_BE_GREATER_THAN_ONE")
	}
	switch req.TipoAposta {
	case models.ApostaSurebet, models.ApostaSimples, models.ApostaMultipla, models.ApostaLive, models.ApostaPreJogo:
	default:
		return helpers.JSONError(c, "INVALID_TIPO_APOSTA")
	}
	switch req.Resultado {
	case models.ResultadoGanha, models.ResultadoPerdida, models.ResultadoReembolsada:
	default:
		return helpers.JSONError(c, "INVALID_RESULTADO")
	}

	dataAposta := time.Now()
	if req.DataAposta != "" {
		parsed, err := time.Parse("2006-01-02", req.DataAposta)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, req.DataAposta)
		}
		if err != nil {
			return helpers.JSONError(c, "INVALID_DATA_APOSTA")
		}
		dataAposta = parsed
	}

	lucro, _ := decimal.NewFromFloat(req.ValorRecebido).
		Sub(decimal.NewFromFloat(req.ValorApostado)).
		Round(2).Float64()

	var (
		aposta    models.Aposta
		novoSaldo float64
		notFound  bool
	)
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var banca models.Banca
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", req.BancaID, claims.UserID).
			First(&banca).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				notFound = true
				return nil
			}
			return err
		}

		aposta = models.Aposta{
			BancaID:       banca.ID,
			DataAposta:    dataAposta,
			ValorApostado: req.ValorApostado,
			CasaAposta:    req.CasaAposta,
			TipoAposta:    req.TipoAposta,
			Odd:           req.Odd,
			Resultado:     req.Resultado,
			ValorRecebido: req.ValorRecebido,
			Lucro:         lucro,
			RefID:         uuid.New().String(),
		}
		if err := tx.Create(&aposta).Error; err != nil {
			return err
		}

		novoSaldo = banca.SaldoAtual + lucro
		return tx.Model(&banca).Update("saldo_atual", novoSaldo).Error
	})
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_CREATE_APOSTA")
	}
	if notFound {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "BANCA_NOT_FOUND")
	}

	return helpers.JSONSuccess(c, "Aposta registered", fiber.Map{
		"id":         aposta.ID,
		"lucro":      lucro,
		"novo_saldo": novoSaldo,
		"ref_id":     aposta.RefID,
	})
}
