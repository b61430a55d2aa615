package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ModalityPresencial = "presencial"
	ModalityEAD        = "ead"
	ModalityHibrido    = "hibrido"
)

type CursoModel struct {
	CursoID            uuid.UUID  `gorm:"column:curso_id;type:uuid;primaryKey" json:"curso_id"`
	CursoTitle         string     `gorm:"column:curso_title;type:varchar(200);not null" json:"curso_title"`
	CursoSlug          string     `gorm:"column:curso_slug;type:varchar(160);not null;uniqueIndex" json:"curso_slug"`
	CursoDescription   *string    `gorm:"column:curso_description;type:text" json:"curso_description"`
	CursoModality      *string    `gorm:"column:curso_modality;type:varchar(20)" json:"curso_modality"`
	CursoDurationHours *int       `gorm:"column:curso_duration_hours" json:"curso_duration_hours"`
	CursoCategoriaID   *uuid.UUID `gorm:"column:curso_categoria_id;type:uuid;index" json:"curso_categoria_id"`
	CursoImageURL      *string    `gorm:"column:curso_image_url;type:text" json:"curso_image_url"`
	CursoActive        bool       `gorm:"column:curso_active;not null;default:false;index" json:"curso_active"`
	CursoCreatedAt     time.Time  `gorm:"column:curso_created_at;autoCreateTime" json:"curso_created_at"`
	CursoUpdatedAt     time.Time  `gorm:"column:curso_updated_at;autoUpdateTime" json:"curso_updated_at"`
}

func (CursoModel) TableName() string {
	return "cursos"
}

func (m *CursoModel) BeforeCreate(tx *gorm.DB) error {
	if m.CursoID == uuid.Nil {
		m.CursoID = uuid.New()
	}
	return nil
}
