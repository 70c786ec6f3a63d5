package repository

import (
	"gorm.io/gorm"
)

// affected converte "nenhuma linha" em ErrRecordNotFound, para que updates
// e deletes em registros de outro dono respondam como inexistentes.
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
