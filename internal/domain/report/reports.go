package report

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

type Period string

const (
	PeriodSemana    Period = "semana"
	PeriodMes       Period = "mes"
	PeriodTrimestre Period = "trimestre"
	PeriodAno       Period = "ano"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return PeriodMes, nil
	case PeriodSemana, PeriodMes, PeriodTrimestre, PeriodAno:
		return Period(s), nil
	}
	return "", httperr.ErrBusiness("invalid_period")
}

type ReportsSummary struct {
	// Periodo é apenas ecoado: o cálculo usa sempre o histórico completo.
	Periodo       Period           `json:"periodo"`
	PeriodApplied bool             `json:"periodo_aplicado"`
	TotalClientes int              `json:"total_clientes"`
	TotalSessoes  int              `json:"total_sessoes"`
	ReceitaTotal  decimal.Decimal  `json:"receita_total"`
	TicketMedio   decimal.Decimal  `json:"ticket_medio"`
	ReceitaPorMes []MonthBucket    `json:"receita_por_mes"`
	Categorias    []CategoryAmount `json:"categorias"`
}

// Reports monta a visão de relatórios: totais, ticket médio, receita por
// mês e receita por categoria.
//
// TODO: aplicar o período selecionado quando houver definição de janela
// (semana/mês/trimestre/ano relativos a hoje ou ao calendário).
func Reports(
	clients []models.Client,
	sessions []models.Session,
	transactions []models.Transaction,
	period Period,
) ReportsSummary {

	totalSessoes := len(sessions)
	receitaTotal := sumIncome(transactions)

	ticketMedio := decimal.Zero
	if totalSessoes > 0 {
		ticketMedio = receitaTotal.Div(decimal.NewFromInt(int64(totalSessoes)))
	}

	return ReportsSummary{
		Periodo:       period,
		PeriodApplied: false,
		TotalClientes: countActive(clients),
		TotalSessoes:  totalSessoes,
		ReceitaTotal:  receitaTotal,
		TicketMedio:   ticketMedio,
		ReceitaPorMes: IncomeByMonth(transactions),
		Categorias:    IncomeByCategory(transactions),
	}
}

// IncomeByMonth agrupa receitas pelo mês do lançamento, ignorando o ano.
// Sempre devolve 12 posições, de Jan a Dez.
func IncomeByMonth(transactions []models.Transaction) []MonthBucket {
	var sums [12]decimal.Decimal
	for i := range sums {
		sums[i] = decimal.Zero
	}

	for _, t := range transactions {
		if !isIncome(t) {
			continue
		}
		idx := int(t.DataTransacao.Month()) - 1
		sums[idx] = sums[idx].Add(amount(t))
	}

	out := make([]MonthBucket, 0, len(MonthLabels))
	for i, label := range MonthLabels {
		out = append(out, MonthBucket{Mes: label, Receita: sums[i]})
	}
	return out
}

// IncomeByCategory soma receitas por categoria na ordem em que cada
// categoria aparece pela primeira vez.
func IncomeByCategory(transactions []models.Transaction) []CategoryAmount {
	out := []CategoryAmount{}
	index := map[string]int{}

	for _, t := range transactions {
		if !isIncome(t) {
			continue
		}
		i, seen := index[t.Categoria]
		if !seen {
			index[t.Categoria] = len(out)
			out = append(out, CategoryAmount{Name: t.Categoria, Value: amount(t)})
			continue
		}
		out[i].Value = out[i].Value.Add(amount(t))
	}
	return out
}
