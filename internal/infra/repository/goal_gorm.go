package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

type GoalGormRepository struct {
	db *gorm.DB
}

func NewGoalGormRepository(db *gorm.DB) *GoalGormRepository {
	return &GoalGormRepository{db: db}
}

func (r *GoalGormRepository) List(
	ctx context.Context,
	userID uuid.UUID,
) ([]models.Goal, error) {

	var goals []models.Goal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("ano DESC").
		Order("mes DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *GoalGormRepository) Create(
	ctx context.Context,
	g *models.Goal,
) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GoalGormRepository) Delete(
	ctx context.Context,
	userID uuid.UUID,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Goal{})
	return affected(res)
}
