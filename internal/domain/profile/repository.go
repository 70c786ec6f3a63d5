package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

// Patch carrega apenas os campos enviados; nil significa "não alterar".
type Patch struct {
	Nome              *string
	Telefone          *string
	CRP               *string
	Especializacao    *string
	AvatarURL         *string
	DarkMode          *bool
	NotificacoesEmail *bool
}

func (p Patch) Empty() bool {
	return p.Nome == nil && p.Telefone == nil && p.CRP == nil &&
		p.Especializacao == nil && p.AvatarURL == nil &&
		p.DarkMode == nil && p.NotificacoesEmail == nil
}

type Repository interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Patch(ctx context.Context, userID uuid.UUID, p Patch) (*models.Profile, error)
}
