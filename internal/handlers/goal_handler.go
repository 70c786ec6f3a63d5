package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/consultorio/internal/domain/goal"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/httpresp"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

type GoalHandler struct {
	goals goal.Repository
	log   *zap.Logger
}

func NewGoalHandler(goals goal.Repository, log *zap.Logger) *GoalHandler {
	return &GoalHandler{goals: goals, log: log}
}

type GoalRequest struct {
	Ano         int              `json:"ano" binding:"required"`
	Mes         *int             `json:"mes"`
	TipoMeta    string           `json:"tipo_meta" binding:"required"`
	SessoesAlvo *int             `json:"sessoes_alvo"`
	ValorAlvo   *decimal.Decimal `json:"valor_alvo"`
}

func (h *GoalHandler) List(c *gin.Context) {
	goals, err := h.goals.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.log.Error("list goals", zap.Error(err))
		httperr.Internal(c, "failed_to_list_goals", "Erro ao carregar metas.")
		return
	}

	httpresp.List(c, goals)
}

func (h *GoalHandler) Create(c *gin.Context) {
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	g := &models.Goal{
		UserID:      middleware.UserID(c),
		Ano:         req.Ano,
		Mes:         req.Mes,
		TipoMeta:    req.TipoMeta,
		SessoesAlvo: req.SessoesAlvo,
	}
	if req.ValorAlvo != nil {
		if !checkAmount(c, *req.ValorAlvo) {
			return
		}
		g.ValorAlvo = decimal.NewNullDecimal(*req.ValorAlvo)
	}

	if err := goal.Validate(g); err != nil {
		writeBusiness(c, err)
		return
	}

	if err := h.goals.Create(c.Request.Context(), g); err != nil {
		h.log.Error("create goal", zap.Error(err))
		httperr.Internal(c, "failed_to_create_goal", "Erro ao salvar meta.")
		return
	}

	httpresp.Created(c, g)
}

func (h *GoalHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.goals.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "goal_not_found", "Meta não encontrada.")
			return
		}
		h.log.Error("delete goal", zap.Error(err))
		httperr.Internal(c, "failed_to_delete_goal", "Erro ao excluir meta.")
		return
	}

	httpresp.Message(c, "Meta excluída com sucesso.")
}
