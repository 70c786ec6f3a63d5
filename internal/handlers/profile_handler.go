package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/consultorio/internal/avatar"
	"github.com/BruksfildServices01/consultorio/internal/domain/profile"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/httpresp"
	"github.com/BruksfildServices01/consultorio/internal/infra/storage"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
)

type ProfileHandler struct {
	profiles profile.Repository
	storage  storage.ObjectStorage
	log      *zap.Logger
	now      func() time.Time
}

// NewProfileHandler aceita storage nil: o envio de avatar fica desabilitado.
func NewProfileHandler(
	profiles profile.Repository,
	objects storage.ObjectStorage,
	log *zap.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		storage:  objects,
		log:      log,
		now:      time.Now,
	}
}

// Campos ausentes no JSON não são alterados.
type ProfilePatchRequest struct {
	Nome              *string `json:"nome" binding:"omitempty,min=1,max=100"`
	Telefone          *string `json:"telefone" binding:"omitempty,max=20"`
	CRP               *string `json:"crp" binding:"omitempty,max=20"`
	Especializacao    *string `json:"especializacao" binding:"omitempty,max=100"`
	DarkMode          *bool   `json:"dark_mode"`
	NotificacoesEmail *bool   `json:"notificacoes_email"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.profiles.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "profile_not_found", "Perfil não encontrado.")
			return
		}
		h.log.Error("get profile", zap.Error(err))
		httperr.Internal(c, "failed_to_load_profile", "Erro ao carregar perfil.")
		return
	}

	httpresp.OK(c, p)
}

func (h *ProfileHandler) Patch(c *gin.Context) {
	var req ProfilePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	if req.Nome != nil {
		nome := strings.TrimSpace(*req.Nome)
		if nome == "" {
			httperr.BadRequest(c, "missing_name", "Nome é obrigatório.")
			return
		}
		req.Nome = &nome
	}

	h.apply(c, profile.Patch{
		Nome:              req.Nome,
		Telefone:          req.Telefone,
		CRP:               req.CRP,
		Especializacao:    req.Especializacao,
		DarkMode:          req.DarkMode,
		NotificacoesEmail: req.NotificacoesEmail,
	})
}

func (h *ProfileHandler) apply(c *gin.Context, patch profile.Patch) {
	p, err := h.profiles.Patch(c.Request.Context(), middleware.UserID(c), patch)
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "profile_not_found", "Perfil não encontrado.")
			return
		}
		h.log.Error("patch profile", zap.Error(err))
		httperr.Internal(c, "failed_to_update_profile", "Erro ao salvar perfil.")
		return
	}

	httpresp.OK(c, p)
}

// ======================================================
// AVATAR (multipart, campo "avatar")
// ======================================================
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	if h.storage == nil {
		httperr.Unavailable(c, "avatar_upload_disabled", "Envio de foto indisponível.")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, avatar.MaxUploadBytes+1<<20)

	fh, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar", "Envie uma imagem no campo avatar.")
		return
	}
	if fh.Size > avatar.MaxUploadBytes {
		httperr.BadRequest(c, "avatar_too_large", "A imagem deve ter no máximo 5 MB.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		invalidRequest(c)
		return
	}
	defer f.Close()

	img, err := avatar.Normalize(f)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		h.log.Error("normalize avatar", zap.Error(err))
		httperr.Internal(c, "failed_to_process_avatar", "Erro ao processar imagem.")
		return
	}

	userID := middleware.UserID(c)

	url, err := h.storage.Put(c.Request.Context(), avatar.Key(userID, h.now()), img, avatar.ContentType)
	if err != nil {
		h.log.Error("upload avatar", zap.Error(err))
		httperr.Internal(c, "failed_to_upload_avatar", "Erro ao enviar imagem.")
		return
	}

	h.apply(c, profile.Patch{AvatarURL: &url})
}
