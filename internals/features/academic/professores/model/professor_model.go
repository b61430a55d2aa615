package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessorModel struct {
	ProfessorID        uuid.UUID `gorm:"column:professor_id;type:uuid;primaryKey" json:"professor_id"`
	ProfessorNome      string    `gorm:"column:professor_nome;type:varchar(150);not null" json:"professor_nome"`
	ProfessorTitulacao *string   `gorm:"column:professor_titulacao;type:varchar(20)" json:"professor_titulacao"`
	ProfessorEmail     *string   `gorm:"column:professor_email;type:varchar(255)" json:"professor_email"`
	ProfessorTelefone  *string   `gorm:"column:professor_telefone;type:varchar(30)" json:"professor_telefone"`
	ProfessorLink      *string   `gorm:"column:professor_link;type:text" json:"professor_link"`
	ProfessorFotoURL   *string   `gorm:"column:professor_foto_url;type:text" json:"professor_foto_url"`
	ProfessorCreatedAt time.Time `gorm:"column:professor_created_at;autoCreateTime" json:"professor_created_at"`
	ProfessorUpdatedAt time.Time `gorm:"column:professor_updated_at;autoUpdateTime" json:"professor_updated_at"`
}

func (ProfessorModel) TableName() string {
	return "professores"
}

func (m *ProfessorModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProfessorID == uuid.Nil {
		m.ProfessorID = uuid.New()
	}
	return nil
}
