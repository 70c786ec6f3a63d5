package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

// Repository é o acesso às sessões de um terapeuta. Todas as operações
// são filtradas pelo dono (userID).
type Repository interface {
	// List traz as sessões mais recentes primeiro, com o nome do cliente.
	List(ctx context.Context, userID uuid.UUID) ([]models.Session, error)

	Get(ctx context.Context, userID, id uuid.UUID) (*models.Session, error)

	Create(ctx context.Context, s *models.Session) error

	// Replace grava o registro inteiro (edição pelo formulário).
	Replace(ctx context.Context, s *models.Session) error

	// Delete remove de fato; transações ligadas não são tocadas.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
