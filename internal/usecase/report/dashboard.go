package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/consultorio/internal/domain/report"
	"github.com/BruksfildServices01/consultorio/internal/domain/transaction"
)

type LoadDashboard struct {
	repos Repositories
	loc   *time.Location
	log   *zap.Logger
	now   func() time.Time
}

func NewLoadDashboard(
	repos Repositories,
	loc *time.Location,
	log *zap.Logger,
) *LoadDashboard {
	return &LoadDashboard{
		repos: repos,
		loc:   loc,
		log:   log,
		now:   time.Now,
	}
}

func (uc *LoadDashboard) Execute(
	ctx context.Context,
	userID uuid.UUID,
) (domain.DashboardSummary, error) {

	r, err := loadAll(ctx, uc.log, uc.repos, userID, transaction.Filter{
		Tipo: transaction.TypeReceita,
	})
	if err != nil {
		return domain.DashboardSummary{}, err
	}

	return domain.Dashboard(r.clients, r.sessions, r.transactions, uc.now().In(uc.loc)), nil
}
