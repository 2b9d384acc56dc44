package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Alerta is a surebet notification surfaced on the dashboard. UserID 0
// marks a broadcast visible to every user.
type Alerta struct {
	gorm.Model

	UserID   uint           `gorm:"index" json:"user_id"`
	Tipo     string         `gorm:"size:16" json:"tipo"`
	Titulo   string         `gorm:"size:255" json:"titulo"`
	Mensagem string         `gorm:"size:512" json:"mensagem"`
	Surebet  datatypes.JSON `json:"surebet"`
	Lida     bool           `gorm:"default:false" json:"lida"`
}
