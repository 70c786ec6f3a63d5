package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/httpresp"
)

type HealthHandler struct {
	ping func(ctx context.Context) error
	log  *zap.Logger
}

func NewHealthHandler(ping func(ctx context.Context) error, log *zap.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, log: log}
}

func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.ping(c.Request.Context()); err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		httperr.Unavailable(c, "database_unavailable", "Banco de dados indisponível.")
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}
