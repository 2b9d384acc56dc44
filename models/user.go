package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Email        string     `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string     `gorm:"size:128" json:"-"`
	Nome         string     `gorm:"size:128" json:"nome"`
	Plano        string     `gorm:"size:16;default:free" json:"plano"`
	Aprovado     bool       `gorm:"default:false" json:"aprovado"`
	IsAdmin      bool       `gorm:"default:false" json:"is_admin"`
	AprovadoEm   *time.Time `json:"aprovado_em"`
	AprovadoPor  uint       `json:"aprovado_por"`

	Bancas   []Banca   `gorm:"foreignKey:UserID"`
	Calculos []Calculo `gorm:"foreignKey:UserID"`
}
