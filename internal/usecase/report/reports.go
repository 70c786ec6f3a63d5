package report

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/consultorio/internal/domain/report"
	"github.com/BruksfildServices01/consultorio/internal/domain/transaction"
)

type LoadReports struct {
	repos Repositories
	log   *zap.Logger
}

func NewLoadReports(repos Repositories, log *zap.Logger) *LoadReports {
	return &LoadReports{repos: repos, log: log}
}

func (uc *LoadReports) Execute(
	ctx context.Context,
	userID uuid.UUID,
	period domain.Period,
) (domain.ReportsSummary, error) {

	// ordem de criação define a ordem das categorias
	r, err := loadAll(ctx, uc.log, uc.repos, userID, transaction.Filter{
		Chronological: true,
	})
	if err != nil {
		return domain.ReportsSummary{}, err
	}

	return domain.Reports(r.clients, r.sessions, r.transactions, period), nil
}
