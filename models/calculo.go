package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Calculo is a persisted arbitrage calculation kept for user reference.
// Odds and Resultado hold the raw calculator input/output as JSON; they
// are never a source of truth.
type Calculo struct {
	gorm.Model

	UserID    uint           `gorm:"index" json:"user_id"`
	Tipo      string         `gorm:"size:16" json:"tipo"`
	Odds      datatypes.JSON `json:"odds"`
	Stake     float64        `json:"stake"`
	Resultado datatypes.JSON `json:"resultado"`
}
