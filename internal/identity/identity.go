// Package identity é o provedor de identidade da aplicação: cadastro,
// confirmação de e-mail, login com JWT, logout por revogação e troca de senha.
package identity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

const (
	CodeInvalidEmail             = "invalid_email"
	CodeInvalidEmailDomain       = "invalid_email_domain"
	CodeEmailAlreadyRegistered   = "email_already_registered"
	CodeInvalidCredentials       = "invalid_credentials"
	CodeEmailNotConfirmed        = "email_not_confirmed"
	CodeInvalidConfirmationToken = "invalid_confirmation_token"
)

// Identity é o usuário autenticado por trás de um token válido.
type Identity struct {
	UserID    uuid.UUID
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

type SignUpInput struct {
	Email      string
	Password   string
	Nome       string
	RedirectTo string
}

type SignUpResult struct {
	User       *models.User
	RedirectTo string

	// Sem confirmação pendente o usuário já sai logado.
	Session *Session

	ConfirmationRequired bool
	ConfirmationToken    string
}

type Session struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *models.User
}

type Provider interface {
	SignUp(ctx context.Context, in SignUpInput) (*SignUpResult, error)
	Confirm(ctx context.Context, token string) (redirectTo string, err error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, id Identity) error

	// CurrentIdentity devolve nil, sem erro, para token ausente, inválido,
	// expirado ou revogado.
	CurrentIdentity(ctx context.Context, token string) (*Identity, error)

	UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error
}

type UserStore interface {
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByConfirmationToken(ctx context.Context, token string) (*models.User, error)
	MarkConfirmed(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

type RevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
