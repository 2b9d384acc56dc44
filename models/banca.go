package models

import "gorm.io/gorm"

// Banca is a user's tracked capital pool. SaldoAtual is always
// ValorInicial plus the lucro of every settled aposta against it.
type Banca struct {
	gorm.Model

	UserID         uint    `gorm:"index" json:"user_id"`
	Nome           string  `gorm:"size:128" json:"nome"`
	ValorInicial   float64 `json:"valor_inicial"`
	SaldoAtual     float64 `json:"saldo_atual"`
	MetaValor      float64 `json:"meta_valor"`
	MetaPercentual float64 `json:"meta_percentual"`

	Apostas []Aposta `gorm:"foreignKey:BancaID;constraint:OnDelete:CASCADE"`
}
