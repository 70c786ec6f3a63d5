package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cliente atendido pelo terapeuta. Nunca é removido fisicamente:
// a remoção apenas marca Ativo=false.
type Client struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	Nome     string  `gorm:"size:100;not null" json:"nome"`
	Email    *string `gorm:"size:100" json:"email"`
	Telefone *string `gorm:"size:20" json:"telefone"`

	TipoSessao      string          `gorm:"size:20;not null" json:"tipo_sessao"`
	ValorSessao     decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"valor_sessao"`
	StatusPagamento string          `gorm:"size:20;default:'Ativo'" json:"status_pagamento"`
	Observacoes     *string         `gorm:"type:text" json:"observacoes"`
	Ativo           bool            `gorm:"default:true;index" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
}

func (Client) TableName() string { return "clientes" }

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
