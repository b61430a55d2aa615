package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	PostID          uuid.UUID  `gorm:"column:post_id;type:uuid;primaryKey" json:"post_id"`
	PostSlug        string     `gorm:"column:post_slug;type:varchar(160);not null;uniqueIndex" json:"post_slug"`
	PostTitle       string     `gorm:"column:post_title;type:varchar(200);not null" json:"post_title"`
	PostDate        *time.Time `gorm:"column:post_date;type:date;index" json:"post_date"`
	PostAuthor      *string    `gorm:"column:post_author;type:varchar(120)" json:"post_author"`
	PostContent     string     `gorm:"column:post_content;type:text;not null" json:"post_content"`
	PostPublished   bool       `gorm:"column:post_published;not null;default:false;index" json:"post_published"`
	PostCoverURL    *string    `gorm:"column:post_cover_url;type:text" json:"post_cover_url"`
	PostCategoriaID *uuid.UUID `gorm:"column:post_categoria_id;type:uuid;index" json:"post_categoria_id"`
	PostCreatedAt   time.Time  `gorm:"column:post_created_at;autoCreateTime" json:"post_created_at"`
	PostUpdatedAt   time.Time  `gorm:"column:post_updated_at;autoUpdateTime" json:"post_updated_at"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (m *PostModel) BeforeCreate(tx *gorm.DB) error {
	if m.PostID == uuid.Nil {
		m.PostID = uuid.New()
	}
	return nil
}
