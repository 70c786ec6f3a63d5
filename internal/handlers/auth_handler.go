package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/httpresp"
	"github.com/BruksfildServices01/consultorio/internal/identity"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
	"github.com/BruksfildServices01/consultorio/internal/validators"
)

type AuthHandler struct {
	provider identity.Provider
	log      *zap.Logger
}

func NewAuthHandler(provider identity.Provider, log *zap.Logger) *AuthHandler {
	return &AuthHandler{provider: provider, log: log}
}

// --------- Requests ---------

type RegisterRequest struct {
	Nome            string `json:"nome" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,email,max=100"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	RedirectTo      string `json:"redirect_to" binding:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// --------- Responses ---------

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Nome  string    `json:"nome"`
}

type sessionResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        userResponse `json:"user"`
}

func newSessionResponse(s *identity.Session) sessionResponse {
	return sessionResponse{
		AccessToken: s.AccessToken,
		TokenType:   "bearer",
		ExpiresAt:   s.ExpiresAt,
		User: userResponse{
			ID:    s.User.ID,
			Email: s.User.Email,
			Nome:  s.User.Nome,
		},
	}
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	if err := validators.ValidateNewPassword(req.Password, req.ConfirmPassword); err != nil {
		writeBusiness(c, err)
		return
	}

	res, err := h.provider.SignUp(c.Request.Context(), identity.SignUpInput{
		Email:      req.Email,
		Password:   req.Password,
		Nome:       req.Nome,
		RedirectTo: req.RedirectTo,
	})
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		h.log.Error("sign up", zap.Error(err))
		httperr.Internal(c, "failed_to_register", "Erro ao criar conta.")
		return
	}

	body := gin.H{
		"user": userResponse{
			ID:    res.User.ID,
			Email: res.User.Email,
			Nome:  res.User.Nome,
		},
		"redirect_to":           res.RedirectTo,
		"confirmation_required": res.ConfirmationRequired,
	}

	if res.ConfirmationRequired {
		// sem serviço de e-mail: o link sai no log
		h.log.Info("confirmation link",
			zap.String("email", res.User.Email),
			zap.String("path", "/api/auth/confirm?token="+res.ConfirmationToken),
		)
	} else {
		body["session"] = newSessionResponse(res.Session)
	}

	httpresp.Created(c, body)
}

func (h *AuthHandler) Confirm(c *gin.Context) {
	redirect, err := h.provider.Confirm(c.Request.Context(), c.Query("token"))
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		h.log.Error("confirm email", zap.Error(err))
		httperr.Internal(c, "failed_to_confirm", "Erro ao confirmar e-mail.")
		return
	}

	c.Redirect(http.StatusFound, redirect)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	session, err := h.provider.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if writeBusiness(c, err) {
			return
		}
		h.log.Error("sign in", zap.Error(err))
		httperr.Internal(c, "failed_to_login", "Erro ao entrar.")
		return
	}

	httpresp.OK(c, newSessionResponse(session))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.provider.SignOut(c.Request.Context(), middleware.CurrentIdentity(c)); err != nil {
		h.log.Error("sign out", zap.Error(err))
		httperr.Internal(c, "failed_to_logout", "Erro ao sair.")
		return
	}

	httpresp.Message(c, "Sessão encerrada.")
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	if err := validators.ValidateNewPassword(req.Password, req.ConfirmPassword); err != nil {
		writeBusiness(c, err)
		return
	}

	if err := h.provider.UpdatePassword(c.Request.Context(), middleware.UserID(c), req.Password); err != nil {
		if writeBusiness(c, err) {
			return
		}
		h.log.Error("update password", zap.Error(err))
		httperr.Internal(c, "failed_to_update_password", "Erro ao alterar senha.")
		return
	}

	httpresp.Message(c, "Senha alterada com sucesso.")
}
