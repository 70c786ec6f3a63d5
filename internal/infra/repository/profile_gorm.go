package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultorio/internal/domain/profile"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

func (r *ProfileGormRepository) Get(
	ctx context.Context,
	userID uuid.UUID,
) (*models.Profile, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileGormRepository) Patch(
	ctx context.Context,
	userID uuid.UUID,
	patch profile.Patch,
) (*models.Profile, error) {

	if patch.Empty() {
		return r.Get(ctx, userID)
	}

	updates := map[string]any{}
	if patch.Nome != nil {
		updates["nome"] = *patch.Nome
	}
	if patch.Telefone != nil {
		updates["telefone"] = models.StringPtr(*patch.Telefone)
	}
	if patch.CRP != nil {
		updates["crp"] = models.StringPtr(*patch.CRP)
	}
	if patch.Especializacao != nil {
		updates["especializacao"] = models.StringPtr(*patch.Especializacao)
	}
	if patch.AvatarURL != nil {
		updates["avatar_url"] = models.StringPtr(*patch.AvatarURL)
	}
	if patch.DarkMode != nil {
		updates["dark_mode"] = *patch.DarkMode
	}
	if patch.NotificacoesEmail != nil {
		updates["notificacoes_email"] = *patch.NotificacoesEmail
	}

	res := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", userID).
		Updates(updates)
	if err := affected(res); err != nil {
		return nil, err
	}

	return r.Get(ctx, userID)
}
