package report

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

type FinancialSummary struct {
	Receitas decimal.Decimal `json:"receitas"`
	Despesas decimal.Decimal `json:"despesas"`
	Saldo    decimal.Decimal `json:"saldo"`
}

// Financial soma todo o histórico, sem filtro de período.
func Financial(transactions []models.Transaction) FinancialSummary {
	receitas := decimal.Zero
	despesas := decimal.Zero

	for _, t := range transactions {
		switch {
		case isIncome(t):
			receitas = receitas.Add(amount(t))
		case isExpense(t):
			despesas = despesas.Add(amount(t))
		}
	}

	return FinancialSummary{
		Receitas: receitas,
		Despesas: despesas,
		Saldo:    receitas.Sub(despesas),
	}
}
