package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultorio/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) ListActive(
	ctx context.Context,
	userID uuid.UUID,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND ativo = ?", userID, true).
		Order("nome ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) Get(
	ctx context.Context,
	userID uuid.UUID,
	id uuid.UUID,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) Create(
	ctx context.Context,
	client *models.Client,
) error {
	client.Ativo = true
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *ClientGormRepository) Replace(
	ctx context.Context,
	client *models.Client,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ? AND user_id = ?", client.ID, client.UserID).
		Updates(map[string]any{
			"nome":             client.Nome,
			"email":            client.Email,
			"telefone":         client.Telefone,
			"tipo_sessao":      client.TipoSessao,
			"valor_sessao":     client.ValorSessao,
			"status_pagamento": client.StatusPagamento,
			"observacoes":      client.Observacoes,
		})
	return affected(res)
}

func (r *ClientGormRepository) Deactivate(
	ctx context.Context,
	userID uuid.UUID,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("ativo", false)
	return affected(res)
}
