package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

type SessionGormRepository struct {
	db *gorm.DB
}

func NewSessionGormRepository(db *gorm.DB) *SessionGormRepository {
	return &SessionGormRepository{db: db}
}

// withClient carrega só o necessário do cliente para exibir o nome,
// inclusive de clientes já desativados.
func withClient(db *gorm.DB) *gorm.DB {
	return db.Preload("Cliente", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "nome")
	})
}

func (r *SessionGormRepository) List(
	ctx context.Context,
	userID uuid.UUID,
) ([]models.Session, error) {

	var sessions []models.Session
	if err := withClient(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("data_sessao DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionGormRepository) Get(
	ctx context.Context,
	userID uuid.UUID,
	id uuid.UUID,
) (*models.Session, error) {

	var s models.Session
	if err := withClient(r.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, userID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionGormRepository) Create(
	ctx context.Context,
	s *models.Session,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(s).Error
}

func (r *SessionGormRepository) Replace(
	ctx context.Context,
	s *models.Session,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ? AND user_id = ?", s.ID, s.UserID).
		Updates(map[string]any{
			"cliente_id":       s.ClienteID,
			"data_sessao":      s.DataSessao,
			"duracao_minutos":  s.DuracaoMinutos,
			"valor":            s.Valor,
			"status":           s.Status,
			"pagamento_status": s.PagamentoStatus,
			"observacoes":      s.Observacoes,
		})
	return affected(res)
}

func (r *SessionGormRepository) Delete(
	ctx context.Context,
	userID uuid.UUID,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Session{})
	return affected(res)
}
