package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User é a credencial mantida pelo provedor de identidade.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Nome         string `gorm:"size:100" json:"nome"`
	RedirectTo   string `gorm:"size:255" json:"-"`

	ConfirmationToken *string    `gorm:"size:64;index" json:"-"`
	ConfirmedAt       *time.Time `json:"confirmed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}
