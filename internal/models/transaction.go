package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction é um lançamento financeiro (Receita ou Despesa).
// O sinal de Valor não depende do Tipo.
type Transaction struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	Tipo          string          `gorm:"size:20;not null;index" json:"tipo"`
	Categoria     string          `gorm:"size:50;not null" json:"categoria"`
	Descricao     string          `gorm:"size:255;not null" json:"descricao"`
	Valor         decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"valor"`
	DataTransacao time.Time       `gorm:"type:date;not null" json:"data_transacao"`

	SessaoID *uuid.UUID `gorm:"type:uuid" json:"sessao_id"`

	CreatedAt time.Time `json:"created_at"`
}

func (Transaction) TableName() string { return "transacoes" }

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}
