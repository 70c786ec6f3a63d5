package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/consultorio/internal/domain/session"
	"github.com/BruksfildServices01/consultorio/internal/domain/transaction"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/httpresp"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
	"github.com/BruksfildServices01/consultorio/internal/models"
	"github.com/BruksfildServices01/consultorio/internal/timezone"
)

const maxBatchSize = 100

type TransactionHandler struct {
	transactions transaction.Repository
	sessions     session.Repository
	log          *zap.Logger
}

func NewTransactionHandler(
	transactions transaction.Repository,
	sessions session.Repository,
	log *zap.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		sessions:     sessions,
		log:          log,
	}
}

type TransactionRequest struct {
	Tipo          string           `json:"tipo" binding:"required"`
	Categoria     string           `json:"categoria" binding:"required,max=50"`
	Descricao     string           `json:"descricao" binding:"required,max=255"`
	Valor         *decimal.Decimal `json:"valor"`
	DataTransacao string           `json:"data_transacao" binding:"required"`
	SessaoID      string           `json:"sessao_id" binding:"omitempty,uuid"`
}

type TransactionBatchRequest struct {
	Transacoes []TransactionRequest `json:"transacoes" binding:"required,min=1,dive"`
}

// toModel valida uma entrada; em caso de erro já respondeu a requisição.
func (h *TransactionHandler) toModel(c *gin.Context, userID uuid.UUID, req TransactionRequest) (*models.Transaction, bool) {
	tipo, err := transaction.ParseType(req.Tipo)
	if err != nil {
		writeBusiness(c, err)
		return nil, false
	}

	categoria := strings.TrimSpace(req.Categoria)
	descricao := strings.TrimSpace(req.Descricao)
	if categoria == "" || descricao == "" {
		invalidRequest(c)
		return nil, false
	}

	if req.Valor == nil {
		invalidRequest(c)
		return nil, false
	}
	if !checkAmount(c, *req.Valor) {
		return nil, false
	}

	date, err := timezone.ParseDate(req.DataTransacao)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return nil, false
	}

	t := &models.Transaction{
		UserID:        userID,
		Tipo:          string(tipo),
		Categoria:     categoria,
		Descricao:     descricao,
		Valor:         *req.Valor,
		DataTransacao: date,
	}
	if req.SessaoID != "" {
		id := uuid.MustParse(req.SessaoID)
		if !h.checkSession(c, userID, id) {
			return nil, false
		}
		t.SessaoID = &id
	}
	return t, true
}

// checkSession exige que a sessão vinculada exista e seja do mesmo terapeuta.
func (h *TransactionHandler) checkSession(c *gin.Context, userID, id uuid.UUID) bool {
	if _, err := h.sessions.Get(c.Request.Context(), userID, id); err != nil {
		if httperr.IsNotFound(err) {
			httperr.BadRequest(c, "session_not_found", "Sessão não encontrada.")
			return false
		}
		h.log.Error("load transaction session", zap.Error(err))
		httperr.Internal(c, "failed_to_load_session", "Erro ao carregar sessão.")
		return false
	}
	return true
}

func (h *TransactionHandler) bind(c *gin.Context) (*models.Transaction, bool) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return nil, false
	}
	return h.toModel(c, middleware.UserID(c), req)
}

// ======================================================
// LIST TRANSACTIONS
// ======================================================
func (h *TransactionHandler) List(c *gin.Context) {
	var filter transaction.Filter

	if raw := c.Query("tipo"); raw != "" {
		tipo, err := transaction.ParseType(raw)
		if err != nil {
			writeBusiness(c, err)
			return
		}
		filter.Tipo = tipo
	}

	txs, err := h.transactions.List(c.Request.Context(), middleware.UserID(c), filter)
	if err != nil {
		h.log.Error("list transactions", zap.Error(err))
		httperr.Internal(c, "failed_to_list_transactions", "Erro ao carregar transações.")
		return
	}

	httpresp.List(c, txs)
}

// ======================================================
// CREATE TRANSACTION
// ======================================================
func (h *TransactionHandler) Create(c *gin.Context) {
	t, ok := h.bind(c)
	if !ok {
		return
	}

	if err := h.transactions.Create(c.Request.Context(), t); err != nil {
		h.log.Error("create transaction", zap.Error(err))
		httperr.Internal(c, "failed_to_create_transaction", "Erro ao salvar transação.")
		return
	}

	httpresp.Created(c, t)
}

// ======================================================
// CREATE MANY (tudo ou nada)
// ======================================================
func (h *TransactionHandler) CreateBatch(c *gin.Context) {
	var req TransactionBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	if len(req.Transacoes) > maxBatchSize {
		httperr.BadRequest(c, "batch_too_large", "Envie no máximo 100 transações por vez.")
		return
	}

	userID := middleware.UserID(c)
	txs := make([]models.Transaction, 0, len(req.Transacoes))
	for _, item := range req.Transacoes {
		t, ok := h.toModel(c, userID, item)
		if !ok {
			return
		}
		txs = append(txs, *t)
	}

	if err := h.transactions.CreateMany(c.Request.Context(), txs); err != nil {
		h.log.Error("create transactions", zap.Int("count", len(txs)), zap.Error(err))
		httperr.Internal(c, "failed_to_create_transactions", "Erro ao salvar transações.")
		return
	}

	httpresp.Created(c, httpresp.ListResponse[models.Transaction]{Data: txs, Total: len(txs)})
}

// ======================================================
// UPDATE TRANSACTION
// ======================================================
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	t, ok := h.bind(c)
	if !ok {
		return
	}
	t.ID = id

	ctx := c.Request.Context()

	if err := h.transactions.Replace(ctx, t); err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "transaction_not_found", "Transação não encontrada.")
			return
		}
		h.log.Error("update transaction", zap.Error(err))
		httperr.Internal(c, "failed_to_update_transaction", "Erro ao salvar transação.")
		return
	}

	updated, err := h.transactions.Get(ctx, t.UserID, id)
	if err != nil {
		h.log.Error("reload transaction", zap.Error(err))
		httperr.Internal(c, "failed_to_update_transaction", "Erro ao salvar transação.")
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// DELETE TRANSACTION
// ======================================================
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.transactions.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "transaction_not_found", "Transação não encontrada.")
			return
		}
		h.log.Error("delete transaction", zap.Error(err))
		httperr.Internal(c, "failed_to_delete_transaction", "Erro ao excluir transação.")
		return
	}

	httpresp.Message(c, "Transação excluída com sucesso.")
}

// ======================================================
// CATEGORIES
// ======================================================
func (h *TransactionHandler) Categories(c *gin.Context) {
	if raw := c.Query("tipo"); raw != "" {
		tipo, err := transaction.ParseType(raw)
		if err != nil {
			writeBusiness(c, err)
			return
		}
		httpresp.List(c, transaction.Categories(tipo))
		return
	}

	httpresp.OK(c, gin.H{
		string(transaction.TypeReceita): transaction.Categories(transaction.TypeReceita),
		string(transaction.TypeDespesa): transaction.Categories(transaction.TypeDespesa),
	})
}
