package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/consultorio/internal/domain/report"
	"github.com/BruksfildServices01/consultorio/internal/domain/transaction"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/httpresp"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
	"github.com/BruksfildServices01/consultorio/internal/usecase/report"
)

type dashboardLoader interface {
	Execute(ctx context.Context, userID uuid.UUID) (domain.DashboardSummary, error)
}

type reportsLoader interface {
	Execute(ctx context.Context, userID uuid.UUID, period domain.Period) (domain.ReportsSummary, error)
}

type financialLoader interface {
	Execute(ctx context.Context, userID uuid.UUID, tipo transaction.Type) (*report.FinancialView, error)
}

type ReportHandler struct {
	dashboard dashboardLoader
	reports   reportsLoader
	financial financialLoader
	log       *zap.Logger
}

func NewReportHandler(
	dashboard dashboardLoader,
	reports reportsLoader,
	financial financialLoader,
	log *zap.Logger,
) *ReportHandler {
	return &ReportHandler{
		dashboard: dashboard,
		reports:   reports,
		financial: financial,
		log:       log,
	}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	summary, err := h.dashboard.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.log.Error("load dashboard", zap.Error(err))
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao carregar dados.")
		return
	}

	httpresp.OK(c, summary)
}

func (h *ReportHandler) Financial(c *gin.Context) {
	var tipo transaction.Type
	if raw := c.Query("tipo"); raw != "" {
		parsed, err := transaction.ParseType(raw)
		if err != nil {
			writeBusiness(c, err)
			return
		}
		tipo = parsed
	}

	view, err := h.financial.Execute(c.Request.Context(), middleware.UserID(c), tipo)
	if err != nil {
		h.log.Error("load financial", zap.Error(err))
		httperr.Internal(c, "failed_to_load_transactions", "Erro ao carregar transações.")
		return
	}

	httpresp.OK(c, view)
}

func (h *ReportHandler) Reports(c *gin.Context) {
	period, err := domain.ParsePeriod(c.Query("periodo"))
	if err != nil {
		writeBusiness(c, err)
		return
	}

	summary, err := h.reports.Execute(c.Request.Context(), middleware.UserID(c), period)
	if err != nil {
		h.log.Error("load reports", zap.Error(err))
		httperr.Internal(c, "failed_to_load_reports", "Erro ao carregar relatórios.")
		return
	}

	httpresp.OK(c, summary)
}

// Export ainda não gera arquivo: apenas confirma a ação.
func (h *ReportHandler) Export(c *gin.Context) {
	h.log.Info("report export requested", zap.String("user_id", middleware.UserID(c).String()))
	httpresp.Message(c, "Relatório exportado com sucesso.")
}
