package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusEnviado       = "Enviado"
	StatusEmAtendimento = "Em atendimento"
	StatusFinalizado    = "Finalizado"
)

var Statuses = []string{StatusEnviado, StatusEmAtendimento, StatusFinalizado}

type OuvidoriaModel struct {
	OuvidoriaID            uuid.UUID  `gorm:"column:ouvidoria_id;type:uuid;primaryKey" json:"ouvidoria_id"`
	OuvidoriaProtocolo     string     `gorm:"column:ouvidoria_protocolo;type:varchar(32);not null;uniqueIndex" json:"ouvidoria_protocolo"`
	OuvidoriaStatus        string     `gorm:"column:ouvidoria_status;type:varchar(20);not null;default:'Enviado';index" json:"ouvidoria_status"`
	OuvidoriaTipo          *string    `gorm:"column:ouvidoria_tipo;type:varchar(20)" json:"ouvidoria_tipo"`
	OuvidoriaNome          string     `gorm:"column:ouvidoria_nome;type:varchar(150);not null" json:"ouvidoria_nome"`
	OuvidoriaEmail         string     `gorm:"column:ouvidoria_email;type:varchar(255);not null" json:"ouvidoria_email"`
	OuvidoriaTelefone      *string    `gorm:"column:ouvidoria_telefone;type:varchar(30)" json:"ouvidoria_telefone"`
	OuvidoriaAssunto       string     `gorm:"column:ouvidoria_assunto;type:varchar(200);not null" json:"ouvidoria_assunto"`
	OuvidoriaMensagem      string     `gorm:"column:ouvidoria_mensagem;type:text;not null" json:"ouvidoria_mensagem"`
	OuvidoriaResponsavelID *uuid.UUID `gorm:"column:ouvidoria_responsavel_id;type:uuid;index" json:"ouvidoria_responsavel_id"`
	OuvidoriaResposta      *string    `gorm:"column:ouvidoria_resposta;type:text" json:"ouvidoria_resposta"`
	OuvidoriaRespondidoEm  *time.Time `gorm:"column:ouvidoria_respondido_em" json:"ouvidoria_respondido_em"`
	OuvidoriaCreatedAt     time.Time  `gorm:"column:ouvidoria_created_at;autoCreateTime;index" json:"ouvidoria_created_at"`
	OuvidoriaUpdatedAt     time.Time  `gorm:"column:ouvidoria_updated_at;autoUpdateTime" json:"ouvidoria_updated_at"`
}

func (OuvidoriaModel) TableName() string {
	return "ouvidoria"
}

func (m *OuvidoriaModel) BeforeCreate(tx *gorm.DB) error {
	if m.OuvidoriaID == uuid.Nil {
		m.OuvidoriaID = uuid.New()
	}
	if m.OuvidoriaStatus == "" {
		m.OuvidoriaStatus = StatusEnviado
	}
	return nil
}
