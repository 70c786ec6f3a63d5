package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

type Repository interface {
	// ListActive traz apenas clientes com ativo=true, ordenados por nome.
	ListActive(ctx context.Context, userID uuid.UUID) ([]models.Client, error)

	// Get encontra o cliente mesmo se inativo, para resolver sessões antigas.
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Client, error)

	Create(ctx context.Context, c *models.Client) error

	Replace(ctx context.Context, c *models.Client) error

	// Deactivate é a remoção: marca ativo=false e preserva o histórico.
	Deactivate(ctx context.Context, userID, id uuid.UUID) error
}
