package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

type Filter struct {
	// Tipo vazio traz receitas e despesas.
	Tipo Type

	// Chronological ordena pela criação, mais antigas primeiro.
	Chronological bool
}

type Repository interface {
	// List ordena por data_transacao decrescente, salvo Filter.Chronological.
	List(ctx context.Context, userID uuid.UUID, f Filter) ([]models.Transaction, error)

	Get(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error)

	Create(ctx context.Context, t *models.Transaction) error

	// CreateMany insere todas ou nenhuma.
	CreateMany(ctx context.Context, ts []models.Transaction) error

	Replace(ctx context.Context, t *models.Transaction) error

	Delete(ctx context.Context, userID, id uuid.UUID) error
}
