package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TrabalhoModel struct {
	TrabalhoID         uuid.UUID                   `gorm:"column:trabalho_id;type:uuid;primaryKey" json:"trabalho_id"`
	TrabalhoTitulo     string                      `gorm:"column:trabalho_titulo;type:varchar(200);not null" json:"trabalho_titulo"`
	TrabalhoSlug       string                      `gorm:"column:trabalho_slug;type:varchar(160);not null;uniqueIndex" json:"trabalho_slug"`
	TrabalhoAutor      *string                     `gorm:"column:trabalho_autor;type:varchar(150)" json:"trabalho_autor"`
	TrabalhoResumo     *string                     `gorm:"column:trabalho_resumo;type:text" json:"trabalho_resumo"`
	TrabalhoLink       *string                     `gorm:"column:trabalho_link;type:text" json:"trabalho_link"`
	TrabalhoCursoID    *uuid.UUID                  `gorm:"column:trabalho_curso_id;type:uuid;index" json:"trabalho_curso_id"`
	TrabalhoVisitantes int64                       `gorm:"column:trabalho_visitantes;not null;default:0" json:"trabalho_visitantes"`
	TrabalhoTags       datatypes.JSONSlice[string] `gorm:"column:trabalho_tags" json:"trabalho_tags"`
	TrabalhoCreatedAt  time.Time                   `gorm:"column:trabalho_created_at;autoCreateTime;index" json:"trabalho_created_at"`
	TrabalhoUpdatedAt  time.Time                   `gorm:"column:trabalho_updated_at;autoUpdateTime" json:"trabalho_updated_at"`
}

func (TrabalhoModel) TableName() string {
	return "trabalhos"
}

func (m *TrabalhoModel) BeforeCreate(tx *gorm.DB) error {
	if m.TrabalhoID == uuid.Nil {
		m.TrabalhoID = uuid.New()
	}
	return nil
}
