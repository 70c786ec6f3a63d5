package report

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/consultorio/internal/domain/report"
	"github.com/BruksfildServices01/consultorio/internal/domain/transaction"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

type FinancialView struct {
	Resumo     domain.FinancialSummary `json:"resumo"`
	Transacoes []models.Transaction    `json:"transacoes"`
}

type LoadFinancial struct {
	transactions transaction.Repository
}

func NewLoadFinancial(transactions transaction.Repository) *LoadFinancial {
	return &LoadFinancial{transactions: transactions}
}

// Execute traz o histórico completo; o filtro por tipo vale só para a lista,
// o resumo sempre considera receitas e despesas.
func (uc *LoadFinancial) Execute(
	ctx context.Context,
	userID uuid.UUID,
	tipo transaction.Type,
) (*FinancialView, error) {

	all, err := uc.transactions.List(ctx, userID, transaction.Filter{})
	if err != nil {
		return nil, err
	}

	listed := all
	if tipo != "" {
		listed = make([]models.Transaction, 0, len(all))
		for _, t := range all {
			if t.Tipo == string(tipo) {
				listed = append(listed, t)
			}
		}
	}

	if listed == nil {
		listed = []models.Transaction{}
	}

	return &FinancialView{
		Resumo:     domain.Financial(all),
		Transacoes: listed,
	}, nil
}
