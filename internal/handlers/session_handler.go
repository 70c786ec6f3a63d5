package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/consultorio/internal/domain/client"
	"github.com/BruksfildServices01/consultorio/internal/domain/session"
	"github.com/BruksfildServices01/consultorio/internal/dto"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/httpresp"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
	"github.com/BruksfildServices01/consultorio/internal/models"
	"github.com/BruksfildServices01/consultorio/internal/timezone"
)

type SessionHandler struct {
	sessions session.Repository
	clients  client.Repository
	loc      *time.Location
	log      *zap.Logger
}

func NewSessionHandler(
	sessions session.Repository,
	clients client.Repository,
	loc *time.Location,
	log *zap.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		clients:  clients,
		loc:      loc,
		log:      log,
	}
}

// A data pode vir completa (data_sessao, RFC3339) ou separada em
// data (YYYY-MM-DD) e hora (HH:mm) no fuso do consultório.
type SessionRequest struct {
	ClienteID       string           `json:"cliente_id" binding:"required,uuid"`
	DataSessao      string           `json:"data_sessao"`
	Data            string           `json:"data"`
	Hora            string           `json:"hora"`
	DuracaoMinutos  int              `json:"duracao_minutos" binding:"omitempty,gte=1,lte=600"`
	Valor           *decimal.Decimal `json:"valor"`
	Status          string           `json:"status"`
	PagamentoStatus string           `json:"pagamento_status"`
	Observacoes     string           `json:"observacoes" binding:"max=2000"`
}

func (h *SessionHandler) parseWhen(req SessionRequest) (time.Time, bool) {
	if req.DataSessao != "" {
		t, err := time.Parse(time.RFC3339, req.DataSessao)
		return t, err == nil
	}
	if req.Data == "" || req.Hora == "" {
		return time.Time{}, false
	}
	t, err := timezone.ParseDateTime(h.loc, req.Data, req.Hora)
	return t, err == nil
}

func (h *SessionHandler) bind(c *gin.Context) (*models.Session, bool) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return nil, false
	}

	when, ok := h.parseWhen(req)
	if !ok {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return nil, false
	}

	status, err := session.ParseStatus(req.Status)
	if err != nil {
		writeBusiness(c, err)
		return nil, false
	}

	payment, err := session.ParsePaymentStatus(req.PagamentoStatus)
	if err != nil {
		writeBusiness(c, err)
		return nil, false
	}

	userID := middleware.UserID(c)
	clienteID := uuid.MustParse(req.ClienteID)

	// o cliente pode estar inativo: sessões antigas continuam editáveis
	cl, err := h.clients.Get(c.Request.Context(), userID, clienteID)
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.BadRequest(c, "client_not_found", "Cliente não encontrado.")
			return nil, false
		}
		h.log.Error("load session client", zap.Error(err))
		httperr.Internal(c, "failed_to_load_client", "Erro ao carregar cliente.")
		return nil, false
	}

	valor := cl.ValorSessao
	if req.Valor != nil {
		valor = *req.Valor
	}
	if !checkAmount(c, valor) {
		return nil, false
	}

	duracao := req.DuracaoMinutos
	if duracao == 0 {
		duracao = session.DefaultDurationMinutes
	}

	return &models.Session{
		UserID:          userID,
		ClienteID:       clienteID,
		DataSessao:      when,
		DuracaoMinutos:  duracao,
		Valor:           valor,
		Status:          string(status),
		PagamentoStatus: string(payment),
		Observacoes:     models.StringPtr(req.Observacoes),
	}, true
}

// ======================================================
// LIST SESSIONS
// ======================================================
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.sessions.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.log.Error("list sessions", zap.Error(err))
		httperr.Internal(c, "failed_to_list_sessions", "Erro ao carregar sessões.")
		return
	}

	httpresp.List(c, dto.NewSessionListDTOs(sessions))
}

// ======================================================
// CREATE SESSION
// ======================================================
func (h *SessionHandler) Create(c *gin.Context) {
	s, ok := h.bind(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if err := h.sessions.Create(ctx, s); err != nil {
		h.log.Error("create session", zap.Error(err))
		httperr.Internal(c, "failed_to_create_session", "Erro ao salvar sessão.")
		return
	}

	created, err := h.sessions.Get(ctx, s.UserID, s.ID)
	if err != nil {
		h.log.Error("reload session", zap.Error(err))
		httperr.Internal(c, "failed_to_create_session", "Erro ao salvar sessão.")
		return
	}

	httpresp.Created(c, dto.NewSessionListDTO(*created))
}

// ======================================================
// UPDATE SESSION
// ======================================================
func (h *SessionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	s, ok := h.bind(c)
	if !ok {
		return
	}
	s.ID = id

	ctx := c.Request.Context()

	if err := h.sessions.Replace(ctx, s); err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "session_not_found", "Sessão não encontrada.")
			return
		}
		h.log.Error("update session", zap.Error(err))
		httperr.Internal(c, "failed_to_update_session", "Erro ao salvar sessão.")
		return
	}

	updated, err := h.sessions.Get(ctx, s.UserID, id)
	if err != nil {
		h.log.Error("reload session", zap.Error(err))
		httperr.Internal(c, "failed_to_update_session", "Erro ao salvar sessão.")
		return
	}

	httpresp.OK(c, dto.NewSessionListDTO(*updated))
}

// ======================================================
// DELETE SESSION
// ======================================================
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.sessions.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "session_not_found", "Sessão não encontrada.")
			return
		}
		h.log.Error("delete session", zap.Error(err))
		httperr.Internal(c, "failed_to_delete_session", "Erro ao excluir sessão.")
		return
	}

	httpresp.Message(c, "Sessão excluída com sucesso.")
}
