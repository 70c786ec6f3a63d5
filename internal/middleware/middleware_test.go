package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/consultorio/internal/identity"
)

type fakeProvider struct {
	identity.Provider
	id  *identity.Identity
	err error
	got string
}

func (f *fakeProvider) CurrentIdentity(_ context.Context, token string) (*identity.Identity, error) {
	f.got = token
	return f.id, f.err
}

func newRouter(p identity.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/me", AuthMiddleware(p, zap.NewNop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c).String(), "email": CurrentIdentity(c).Email})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		header   string
		provider *fakeProvider
		status   int
		contains string
	}{
		{
			name:     "missing header",
			provider: &fakeProvider{},
			status:   http.StatusUnauthorized,
			contains: "missing_authorization_header",
		},
		{
			name:     "not bearer",
			header:   "Basic abc",
			provider: &fakeProvider{},
			status:   http.StatusUnauthorized,
			contains: "invalid_authorization_header",
		},
		{
			name:     "no identity",
			header:   "Bearer abc",
			provider: &fakeProvider{},
			status:   http.StatusUnauthorized,
			contains: "invalid_token",
		},
		{
			name:     "provider down",
			header:   "Bearer abc",
			provider: &fakeProvider{err: errors.New("redis down")},
			status:   http.StatusServiceUnavailable,
			contains: "identity_unavailable",
		},
		{
			name:     "valid",
			header:   "bearer abc",
			provider: &fakeProvider{id: &identity.Identity{UserID: userID, Email: "ana@example.com", ExpiresAt: time.Now().Add(time.Hour)}},
			status:   http.StatusOK,
			contains: userID.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			newRouter(tt.provider).ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core)), Recovery(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error_code":"internal_error","message":"Erro interno."}`, w.Body.String())

	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
	assert.Equal(t, 2, logs.FilterMessage("request").Len())
}
