package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

type Type string

const (
	TypeSessoes Type = "sessoes"
	TypeReceita Type = "receita"
)

// Validate confere o mínimo para uma meta ser utilizável: tipo conhecido,
// mês válido quando informado e o alvo correspondente ao tipo.
func Validate(g *models.Goal) error {
	if g.Ano < 2000 || g.Ano > 2100 {
		return httperr.ErrBusiness("invalid_year")
	}
	if g.Mes != nil && (*g.Mes < 1 || *g.Mes > 12) {
		return httperr.ErrBusiness("invalid_month")
	}

	switch Type(g.TipoMeta) {
	case TypeSessoes:
		if g.SessoesAlvo == nil || *g.SessoesAlvo <= 0 {
			return httperr.ErrBusiness("missing_target")
		}
	case TypeReceita:
		if !g.ValorAlvo.Valid || !g.ValorAlvo.Decimal.IsPositive() {
			return httperr.ErrBusiness("missing_target")
		}
	default:
		return httperr.ErrBusiness("invalid_goal_type")
	}
	return nil
}

type Repository interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Goal, error)
	Create(ctx context.Context, g *models.Goal) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
