package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ApostaSurebet  = "surebet"
	ApostaSimples  = "simples"
	ApostaMultipla = "multipla"
	ApostaLive     = "live"
	ApostaPreJogo  = "pre-jogo"
)

const (
	ResultadoGanha       = "ganha"
	ResultadoPerdida     = "perdida"
	ResultadoReembolsada = "reembolsada"
)

type Aposta struct {
	gorm.Model

	BancaID       uint      `gorm:"index" json:"banca_id"`
	DataAposta    time.Time `gorm:"index" json:"data_aposta"`
	ValorApostado float64   `json:"valor_apostado"`
	CasaAposta    string    `gorm:"size:64" json:"casa_aposta"`
	TipoAposta    string    `gorm:"size:16" json:"tipo_aposta"`
	Odd           float64   `json:"odd"`
	Resultado     string    `gorm:"size:16" json:"resultado"`
	ValorRecebido float64   `json:"valor_recebido"`
	Lucro         float64   `json:"lucro"`
	RefID         string    `gorm:"size:64;index" json:"ref_id"`
}
