package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/consultorio/internal/domain/client"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/httpresp"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

type ClientHandler struct {
	clients client.Repository
	log     *zap.Logger
}

func NewClientHandler(clients client.Repository, log *zap.Logger) *ClientHandler {
	return &ClientHandler{clients: clients, log: log}
}

type ClientRequest struct {
	Nome            string          `json:"nome" binding:"required,max=100"`
	Email           string          `json:"email" binding:"omitempty,email,max=100"`
	Telefone        string          `json:"telefone" binding:"max=20"`
	TipoSessao      string          `json:"tipo_sessao"`
	ValorSessao     decimal.Decimal `json:"valor_sessao"`
	StatusPagamento string          `json:"status_pagamento"`
	Observacoes     string          `json:"observacoes" binding:"max=2000"`
}

func (h *ClientHandler) bind(c *gin.Context) (*models.Client, bool) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return nil, false
	}

	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		httperr.BadRequest(c, "missing_name", "Nome é obrigatório.")
		return nil, false
	}

	tipo, err := client.ParseSessionType(req.TipoSessao)
	if err != nil {
		writeBusiness(c, err)
		return nil, false
	}

	status, err := client.ParsePaymentStatus(req.StatusPagamento)
	if err != nil {
		writeBusiness(c, err)
		return nil, false
	}

	if !checkAmount(c, req.ValorSessao) {
		return nil, false
	}

	return &models.Client{
		UserID:          middleware.UserID(c),
		Nome:            nome,
		Email:           models.StringPtr(strings.TrimSpace(req.Email)),
		Telefone:        models.StringPtr(strings.TrimSpace(req.Telefone)),
		TipoSessao:      string(tipo),
		ValorSessao:     req.ValorSessao,
		StatusPagamento: string(status),
		Observacoes:     models.StringPtr(req.Observacoes),
	}, true
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	clients, err := h.clients.ListActive(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("list clients", zap.Error(err))
		httperr.Internal(c, "failed_to_list_clients", "Erro ao carregar clientes.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// CREATE CLIENT
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	cl, ok := h.bind(c)
	if !ok {
		return
	}

	if err := h.clients.Create(c.Request.Context(), cl); err != nil {
		h.log.Error("create client", zap.Error(err))
		httperr.Internal(c, "failed_to_create_client", "Erro ao salvar cliente.")
		return
	}

	httpresp.Created(c, cl)
}

// ======================================================
// UPDATE CLIENT
// ======================================================
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cl, ok := h.bind(c)
	if !ok {
		return
	}
	cl.ID = id

	ctx := c.Request.Context()

	if err := h.clients.Replace(ctx, cl); err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		h.log.Error("update client", zap.Error(err))
		httperr.Internal(c, "failed_to_update_client", "Erro ao salvar cliente.")
		return
	}

	updated, err := h.clients.Get(ctx, cl.UserID, id)
	if err != nil {
		h.log.Error("reload client", zap.Error(err))
		httperr.Internal(c, "failed_to_update_client", "Erro ao salvar cliente.")
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// DELETE CLIENT (desativa)
// ======================================================
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.clients.Deactivate(c.Request.Context(), middleware.UserID(c), id); err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		h.log.Error("deactivate client", zap.Error(err))
		httperr.Internal(c, "failed_to_delete_client", "Erro ao excluir cliente.")
		return
	}

	httpresp.Message(c, "Cliente excluído com sucesso.")
}
