package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/consultorio/internal/domain/profile"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/httpresp"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
)

type MeHandler struct {
	profiles profile.Repository
	log      *zap.Logger
}

func NewMeHandler(profiles profile.Repository, log *zap.Logger) *MeHandler {
	return &MeHandler{profiles: profiles, log: log}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	id := middleware.CurrentIdentity(c)

	p, err := h.profiles.Get(c.Request.Context(), id.UserID)
	if err != nil && !httperr.IsNotFound(err) {
		h.log.Error("get me", zap.Error(err))
		httperr.Internal(c, "failed_to_load_profile", "Erro ao carregar perfil.")
		return
	}

	httpresp.OK(c, gin.H{
		"user": gin.H{
			"id":    id.UserID,
			"email": id.Email,
		},
		"profile":    p,
		"expires_at": id.ExpiresAt,
	})
}
