package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/identity"
)

const (
	ContextUserID   = "userID"
	ContextIdentity = "identity"
)

func AuthMiddleware(provider identity.Provider, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Faça login para continuar.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			return
		}

		id, err := provider.CurrentIdentity(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			log.Error("identity lookup failed", zap.Error(err))
			httperr.Abort(c, http.StatusServiceUnavailable, "identity_unavailable", "Não foi possível validar a sessão.")
			return
		}
		if id == nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Sessão expirada. Faça login novamente.")
			return
		}

		c.Set(ContextUserID, id.UserID)
		c.Set(ContextIdentity, *id)

		c.Next()
	}
}

// UserID só deve ser chamado em rotas protegidas por AuthMiddleware.
func UserID(c *gin.Context) uuid.UUID {
	return c.MustGet(ContextUserID).(uuid.UUID)
}

func CurrentIdentity(c *gin.Context) identity.Identity {
	return c.MustGet(ContextIdentity).(identity.Identity)
}
