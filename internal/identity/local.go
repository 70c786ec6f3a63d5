package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/consultorio/internal/config"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/models"
	"github.com/BruksfildServices01/consultorio/internal/validators"
)

type Options struct {
	Secret              string
	Issuer              string
	TTL                 time.Duration
	AppURL              string
	RequireConfirmation bool
	ValidateEmailDomain bool
	BcryptCost          int
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Secret:              cfg.JWTSecret,
		Issuer:              cfg.JWTIssuer,
		TTL:                 cfg.TokenTTL,
		AppURL:              cfg.AppURL,
		RequireConfirmation: cfg.RequireEmailConfirmation,
		ValidateEmailDomain: cfg.ValidateEmailDomain,
		BcryptCost:          bcrypt.DefaultCost,
	}
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type LocalProvider struct {
	users   UserStore
	revoked RevocationStore
	opts    Options
	log     *zap.Logger
	now     func() time.Time
}

func NewLocalProvider(
	users UserStore,
	revoked RevocationStore,
	opts Options,
	log *zap.Logger,
) *LocalProvider {

	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}

	return &LocalProvider{
		users:   users,
		revoked: revoked,
		opts:    opts,
		log:     log,
		now:     time.Now,
	}
}

// ======================================================
// CADASTRO
// ======================================================

func (p *LocalProvider) SignUp(ctx context.Context, in SignUpInput) (*SignUpResult, error) {
	email := validators.NormalizeEmail(in.Email)

	if !validators.IsEmailFormatValid(email) {
		return nil, httperr.ErrBusiness(CodeInvalidEmail)
	}
	if p.opts.ValidateEmailDomain && !validators.IsEmailDomainValid(email) {
		return nil, httperr.ErrBusiness(CodeInvalidEmailDomain)
	}
	if err := validators.ValidatePasswordStrength(in.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), p.opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		nome = email[:strings.Index(email, "@")]
	}

	redirect := in.RedirectTo
	if redirect == "" {
		redirect = p.opts.AppURL + "/dashboard"
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Nome:         nome,
		RedirectTo:   redirect,
	}

	if p.opts.RequireConfirmation {
		user.ConfirmationToken = models.StringPtr(strings.ReplaceAll(uuid.NewString(), "-", ""))
	} else {
		now := p.now()
		user.ConfirmedAt = &now
	}

	profile := &models.Profile{
		Nome:              nome,
		Email:             email,
		NotificacoesEmail: true,
	}

	if err := p.users.CreateWithProfile(ctx, user, profile); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness(CodeEmailAlreadyRegistered)
		}
		return nil, err
	}

	result := &SignUpResult{
		User:                 user,
		RedirectTo:           redirect,
		ConfirmationRequired: p.opts.RequireConfirmation,
	}

	if p.opts.RequireConfirmation {
		result.ConfirmationToken = *user.ConfirmationToken
		p.log.Info("confirmation pending",
			zap.String("user_id", user.ID.String()),
			zap.String("email", email),
		)
		return result, nil
	}

	session, err := p.issue(user)
	if err != nil {
		return nil, err
	}
	result.Session = session
	return result, nil
}

func (p *LocalProvider) Confirm(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", httperr.ErrBusiness(CodeInvalidConfirmationToken)
	}

	user, err := p.users.FindByConfirmationToken(ctx, token)
	if err != nil {
		if httperr.IsNotFound(err) {
			return "", httperr.ErrBusiness(CodeInvalidConfirmationToken)
		}
		return "", err
	}

	if err := p.users.MarkConfirmed(ctx, user.ID, p.now()); err != nil {
		return "", err
	}

	return user.RedirectTo, nil
}

// ======================================================
// LOGIN / LOGOUT
// ======================================================

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	user, err := p.users.FindByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrBusiness(CodeInvalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness(CodeInvalidCredentials)
	}

	if p.opts.RequireConfirmation && user.ConfirmedAt == nil {
		return nil, httperr.ErrBusiness(CodeEmailNotConfirmed)
	}

	return p.issue(user)
}

func (p *LocalProvider) SignOut(ctx context.Context, id Identity) error {
	return p.revoked.Revoke(ctx, id.TokenID, id.ExpiresAt.Sub(p.now()))
}

func (p *LocalProvider) issue(user *models.User) (*Session, error) {
	now := p.now()
	expiresAt := now.Add(p.opts.TTL)

	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			Issuer:    p.opts.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(p.opts.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Session{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// ======================================================
// IDENTIDADE ATUAL
// ======================================================

func (p *LocalProvider) CurrentIdentity(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, nil
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.now),
		jwt.WithExpirationRequired(),
	}
	if p.opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(p.opts.Issuer))
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return []byte(p.opts.Secret), nil
	}, parserOpts...)
	if err != nil || !parsed.Valid {
		if err != nil && !errors.Is(err, jwt.ErrTokenExpired) {
			p.log.Debug("rejected token", zap.Error(err))
		}
		return nil, nil
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || claims.ID == "" {
		return nil, nil
	}

	revoked, err := p.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, nil
	}

	return &Identity{
		UserID:    userID,
		Email:     claims.Email,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// ======================================================
// SENHA
// ======================================================

func (p *LocalProvider) UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	if err := validators.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), p.opts.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return p.users.UpdatePasswordHash(ctx, userID, string(hash))
}
