package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoriaModel struct {
	CategoriaID        uuid.UUID `gorm:"column:categoria_id;type:uuid;primaryKey" json:"categoria_id"`
	CategoriaNome      string    `gorm:"column:categoria_nome;type:varchar(80);not null;uniqueIndex" json:"categoria_nome"`
	CategoriaIcone     *string   `gorm:"column:categoria_icone;type:varchar(60)" json:"categoria_icone"`
	CategoriaCor       *string   `gorm:"column:categoria_cor;type:varchar(7)" json:"categoria_cor"`
	CategoriaCreatedAt time.Time `gorm:"column:categoria_created_at;autoCreateTime" json:"categoria_created_at"`
	CategoriaUpdatedAt time.Time `gorm:"column:categoria_updated_at;autoUpdateTime" json:"categoria_updated_at"`
}

func (CategoriaModel) TableName() string {
	return "categorias"
}

func (m *CategoriaModel) BeforeCreate(tx *gorm.DB) error {
	if m.CategoriaID == uuid.Nil {
		m.CategoriaID = uuid.New()
	}
	return nil
}
