package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile tem o mesmo ID do usuário autenticado (um perfil por identidade).
type Profile struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Nome           string  `gorm:"size:100;not null" json:"nome"`
	Email          string  `gorm:"size:100;not null" json:"email"`
	Telefone       *string `gorm:"size:20" json:"telefone"`
	CRP            *string `gorm:"column:crp;size:20" json:"crp"`
	Especializacao *string `gorm:"size:100" json:"especializacao"`
	AvatarURL      *string `gorm:"size:255" json:"avatar_url"`

	DarkMode          bool `gorm:"default:false" json:"dark_mode"`
	NotificacoesEmail bool `gorm:"default:true" json:"notificacoes_email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
