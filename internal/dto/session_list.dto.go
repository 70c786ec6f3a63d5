package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

type SessionListDTO struct {
	ID              uuid.UUID       `json:"id"`
	ClienteID       uuid.UUID       `json:"cliente_id"`
	ClienteNome     *string         `json:"cliente_nome"`
	DataSessao      time.Time       `json:"data_sessao"`
	DuracaoMinutos  int             `json:"duracao_minutos"`
	Valor           decimal.Decimal `json:"valor"`
	Status          string          `json:"status"`
	PagamentoStatus string          `json:"pagamento_status"`
	Observacoes     *string         `json:"observacoes"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewSessionListDTO deixa ClienteNome nulo quando o cliente não existe mais.
func NewSessionListDTO(s models.Session) SessionListDTO {
	out := SessionListDTO{
		ID:              s.ID,
		ClienteID:       s.ClienteID,
		DataSessao:      s.DataSessao,
		DuracaoMinutos:  s.DuracaoMinutos,
		Valor:           s.Valor,
		Status:          s.Status,
		PagamentoStatus: s.PagamentoStatus,
		Observacoes:     s.Observacoes,
		CreatedAt:       s.CreatedAt,
	}
	if s.Cliente != nil {
		nome := s.Cliente.Nome
		out.ClienteNome = &nome
	}
	return out
}

func NewSessionListDTOs(sessions []models.Session) []SessionListDTO {
	out := make([]SessionListDTO, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, NewSessionListDTO(s))
	}
	return out
}
