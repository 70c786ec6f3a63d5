// Package report reduz linhas já filtradas pelo dono em métricas de exibição
// (Dashboard, Financeiro e Relatórios). Nada aqui faz I/O nem falha: valores
// ausentes contam como zero e relações ausentes são toleradas.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/consultorio/internal/domain/transaction"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

// GrowthPlaceholder é o "crescimento" exibido no Dashboard. É um valor fixo,
// não calculado a partir dos dados.
const GrowthPlaceholder = 12.5

// MonthLabels são os rótulos fixos da série mensal de receita.
var MonthLabels = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

type CategoryAmount struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type MonthBucket struct {
	Mes     string          `json:"mes"`
	Receita decimal.Decimal `json:"receita"`
}

func amount(t models.Transaction) decimal.Decimal {
	return t.Valor
}

func isIncome(t models.Transaction) bool {
	return transaction.Type(t.Tipo) == transaction.TypeReceita
}

func isExpense(t models.Transaction) bool {
	return transaction.Type(t.Tipo) == transaction.TypeDespesa
}

func countActive(clients []models.Client) int {
	n := 0
	for _, c := range clients {
		if c.Ativo {
			n++
		}
	}
	return n
}

func sumIncome(ts []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range ts {
		if isIncome(t) {
			total = total.Add(amount(t))
		}
	}
	return total
}
