package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Session struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	ClienteID uuid.UUID `gorm:"type:uuid;index;not null" json:"cliente_id"`
	Cliente   *Client   `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`

	DataSessao     time.Time       `gorm:"not null;index" json:"data_sessao"`
	DuracaoMinutos int             `gorm:"not null;default:50" json:"duracao_minutos"`
	Valor          decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"valor"`

	Status          string  `gorm:"size:20;default:'Agendada'" json:"status"`
	PagamentoStatus string  `gorm:"size:20;default:'Pendente'" json:"pagamento_status"`
	Observacoes     *string `gorm:"type:text" json:"observacoes"`

	CreatedAt time.Time `json:"created_at"`
}

func (Session) TableName() string { return "sessoes" }

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
