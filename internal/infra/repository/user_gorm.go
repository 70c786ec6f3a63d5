package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// CreateWithProfile grava o usuário e o perfil juntos; se um falhar, nenhum fica.
func (r *UserGormRepository) CreateWithProfile(
	ctx context.Context,
	user *models.User,
	profile *models.Profile,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile.ID = user.ID
		return tx.Create(profile).Error
	})
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) FindByConfirmationToken(
	ctx context.Context,
	token string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("confirmation_token = ?", token).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) MarkConfirmed(
	ctx context.Context,
	id uuid.UUID,
	at time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"confirmed_at":       at,
			"confirmation_token": nil,
		})
	return affected(res)
}

func (r *UserGormRepository) UpdatePasswordHash(
	ctx context.Context,
	id uuid.UUID,
	hash string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("password_hash", hash)
	return affected(res)
}
