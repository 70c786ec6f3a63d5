package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/consultorio/internal/models"
	"github.com/BruksfildServices01/consultorio/internal/timezone"
)

type DashboardSummary struct {
	TotalClientes int             `json:"total_clientes"`
	SessoesHoje   int             `json:"sessoes_hoje"`
	ReceitaMes    decimal.Decimal `json:"receita_mes"`
	Crescimento   float64         `json:"crescimento"`
}

// Dashboard resume a visão inicial. now deve estar no fuso do consultório:
// "hoje" é o prefixo YYYY-MM-DD da data da sessão nesse fuso, e a receita do
// mês compara apenas o índice do mês da transação, sem olhar o ano.
func Dashboard(
	clients []models.Client,
	sessions []models.Session,
	incomes []models.Transaction,
	now time.Time,
) DashboardSummary {

	today := now.Format(timezone.DateLayout)
	loc := now.Location()

	sessoesHoje := 0
	for _, s := range sessions {
		if strings.HasPrefix(s.DataSessao.In(loc).Format(time.RFC3339), today) {
			sessoesHoje++
		}
	}

	receitaMes := decimal.Zero
	for _, t := range incomes {
		if !isIncome(t) {
			continue
		}
		if t.DataTransacao.Month() == now.Month() {
			receitaMes = receitaMes.Add(amount(t))
		}
	}

	return DashboardSummary{
		TotalClientes: countActive(clients),
		SessoesHoje:   sessoesHoje,
		ReceitaMes:    receitaMes,
		Crescimento:   GrowthPlaceholder,
	}
}
