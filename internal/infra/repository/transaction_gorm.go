package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultorio/internal/domain/transaction"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

type TransactionGormRepository struct {
	db *gorm.DB
}

func NewTransactionGormRepository(db *gorm.DB) *TransactionGormRepository {
	return &TransactionGormRepository{db: db}
}

func (r *TransactionGormRepository) List(
	ctx context.Context,
	userID uuid.UUID,
	f transaction.Filter,
) ([]models.Transaction, error) {

	q := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if f.Tipo != "" {
		q = q.Where("tipo = ?", string(f.Tipo))
	}

	if f.Chronological {
		q = q.Order("created_at ASC")
	} else {
		q = q.Order("data_transacao DESC").Order("created_at DESC")
	}

	var txs []models.Transaction
	if err := q.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *TransactionGormRepository) Get(
	ctx context.Context,
	userID uuid.UUID,
	id uuid.UUID,
) (*models.Transaction, error) {

	var t models.Transaction
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionGormRepository) Create(
	ctx context.Context,
	t *models.Transaction,
) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionGormRepository) CreateMany(
	ctx context.Context,
	txs []models.Transaction,
) error {

	if len(txs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&txs).Error
	})
}

func (r *TransactionGormRepository) Replace(
	ctx context.Context,
	t *models.Transaction,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", t.ID, t.UserID).
		Updates(map[string]any{
			"tipo":           t.Tipo,
			"categoria":      t.Categoria,
			"descricao":      t.Descricao,
			"valor":          t.Valor,
			"data_transacao": t.DataTransacao,
			"sessao_id":      t.SessaoID,
		})
	return affected(res)
}

func (r *TransactionGormRepository) Delete(
	ctx context.Context,
	userID uuid.UUID,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Transaction{})
	return affected(res)
}
