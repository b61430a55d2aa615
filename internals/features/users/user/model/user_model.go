package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the users table; it doubles as the profile the
// authorization gate resolves (role + status).
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserName  string    `gorm:"column:user_name;size:120;not null" json:"name"`
	Email     string    `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password;not null" json:"-"`
	Role      string    `gorm:"column:role;type:varchar(20);not null;default:'Aluno'" json:"role"`
	Status    string    `gorm:"column:status;type:varchar(20);not null;default:'active'" json:"status"`
	AvatarURL *string   `gorm:"column:avatar_url" json:"avatar,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
