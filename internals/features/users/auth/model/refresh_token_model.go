package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RefreshTokenModel struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	// HMAC-SHA256 of the token, hex encoded (never the plaintext)
	TokenHash string `gorm:"column:token_hash;type:varchar(64);not null;uniqueIndex" json:"-"`

	ExpiresAt time.Time `gorm:"column:expires_at;not null;index" json:"expires_at"`
	UserAgent *string   `gorm:"column:user_agent" json:"user_agent,omitempty"`
	IP        *string   `gorm:"column:ip;type:varchar(64)" json:"ip,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

func (m *RefreshTokenModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
