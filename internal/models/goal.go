package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Goal struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	Ano      int    `gorm:"not null" json:"ano"`
	Mes      *int   `json:"mes"`
	TipoMeta string `gorm:"size:20;not null" json:"tipo_meta"`

	SessoesAlvo *int                `json:"sessoes_alvo"`
	ValorAlvo   decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"valor_alvo"`

	CreatedAt time.Time `json:"created_at"`
}

func (Goal) TableName() string { return "metas" }

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	ensureID(&g.ID)
	return nil
}
