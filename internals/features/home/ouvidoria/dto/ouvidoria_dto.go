package dto

import (
	"strings"
	"time"

	"painel_backend/internals/features/home/ouvidoria/model"
	helper "painel_backend/internals/helpers"

	"github.com/google/uuid"
)

// ============================
// Response DTOs
// ============================

type OuvidoriaDTO struct {
	ID            uuid.UUID  `json:"id"`
	Protocolo     string     `json:"protocolo"`
	Status        string     `json:"status"`
	Tipo          *string    `json:"tipo"`
	Nome          string     `json:"nome"`
	Email         string     `json:"email"`
	Telefone      *string    `json:"telefone"`
	Assunto       string     `json:"assunto"`
	Mensagem      string     `json:"mensagem"`
	ResponsavelID *uuid.UUID `json:"responsavel_id"`
	Resposta      *string    `json:"resposta"`
	RespondidoEm  *time.Time `json:"respondido_em"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// OuvidoriaStatusDTO is what the requester sees when looking up a protocol.
type OuvidoriaStatusDTO struct {
	Protocolo    string     `json:"protocolo"`
	Status       string     `json:"status"`
	Assunto      string     `json:"assunto"`
	Resposta     *string    `json:"resposta"`
	RespondidoEm *time.Time `json:"respondido_em"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ============================
// Requests
// ============================

// PublicOuvidoriaRequest is the anonymous submission form.
type PublicOuvidoriaRequest struct {
	Tipo     *string `json:"tipo" validate:"omitempty,oneof=reclamacao sugestao elogio denuncia duvida"`
	Nome     string  `json:"nome" validate:"required,min=3,max=150"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Telefone *string `json:"telefone" validate:"omitempty,max=30"`
	Assunto  string  `json:"assunto" validate:"required,min=3,max=200"`
	Mensagem string  `json:"mensagem" validate:"required,min=10,max=5000"`
}

func (r *PublicOuvidoriaRequest) Normalize() {
	if r.Tipo = helper.TrimPtr(r.Tipo); r.Tipo != nil {
		low := strings.ToLower(*r.Tipo)
		r.Tipo = &low
	}
	r.Nome = strings.TrimSpace(r.Nome)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Telefone = helper.TrimPtr(r.Telefone)
	r.Assunto = strings.TrimSpace(r.Assunto)
	r.Mensagem = strings.TrimSpace(r.Mensagem)
}

func (r PublicOuvidoriaRequest) ToModel(protocolo string) model.OuvidoriaModel {
	return model.OuvidoriaModel{
		OuvidoriaProtocolo: protocolo,
		OuvidoriaStatus:    model.StatusEnviado,
		OuvidoriaTipo:      r.Tipo,
		OuvidoriaNome:      r.Nome,
		OuvidoriaEmail:     r.Email,
		OuvidoriaTelefone:  r.Telefone,
		OuvidoriaAssunto:   r.Assunto,
		OuvidoriaMensagem:  r.Mensagem,
	}
}

// OuvidoriaRequest is the staff create / full-replace payload.
// Any status may follow any other.
type OuvidoriaRequest struct {
	PublicOuvidoriaRequest
	Status        string     `json:"status" validate:"required,oneof='Enviado' 'Em atendimento' 'Finalizado'"`
	ResponsavelID *uuid.UUID `json:"responsavel_id"`
	Resposta      *string    `json:"resposta" validate:"omitempty,max=10000"`
}

func (r *OuvidoriaRequest) Normalize() {
	r.PublicOuvidoriaRequest.Normalize()
	r.Status = strings.TrimSpace(r.Status)
	r.Resposta = helper.TrimPtr(r.Resposta)
	if r.ResponsavelID != nil && *r.ResponsavelID == uuid.Nil {
		r.ResponsavelID = nil
	}
}

// Apply replaces every mutable field. respondido_em follows the reply:
// stamped when a new reply text arrives, cleared when the reply is removed.
func (r OuvidoriaRequest) Apply(m *model.OuvidoriaModel, now time.Time) {
	prev := m.OuvidoriaResposta

	m.OuvidoriaStatus = r.Status
	m.OuvidoriaTipo = r.Tipo
	m.OuvidoriaNome = r.Nome
	m.OuvidoriaEmail = r.Email
	m.OuvidoriaTelefone = r.Telefone
	m.OuvidoriaAssunto = r.Assunto
	m.OuvidoriaMensagem = r.Mensagem
	m.OuvidoriaResponsavelID = r.ResponsavelID
	m.OuvidoriaResposta = r.Resposta

	switch {
	case r.Resposta == nil:
		m.OuvidoriaRespondidoEm = nil
	case prev == nil || *prev != *r.Resposta:
		m.OuvidoriaRespondidoEm = &now
	}
}

// ============================
// Converters
// ============================

func ToOuvidoriaDTO(m model.OuvidoriaModel) OuvidoriaDTO {
	return OuvidoriaDTO{
		ID:            m.OuvidoriaID,
		Protocolo:     m.OuvidoriaProtocolo,
		Status:        m.OuvidoriaStatus,
		Tipo:          m.OuvidoriaTipo,
		Nome:          m.OuvidoriaNome,
		Email:         m.OuvidoriaEmail,
		Telefone:      m.OuvidoriaTelefone,
		Assunto:       m.OuvidoriaAssunto,
		Mensagem:      m.OuvidoriaMensagem,
		ResponsavelID: m.OuvidoriaResponsavelID,
		Resposta:      m.OuvidoriaResposta,
		RespondidoEm:  m.OuvidoriaRespondidoEm,
		CreatedAt:     m.OuvidoriaCreatedAt,
		UpdatedAt:     m.OuvidoriaUpdatedAt,
	}
}

func ToOuvidoriaDTOs(rows []model.OuvidoriaModel) []OuvidoriaDTO {
	out := make([]OuvidoriaDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToOuvidoriaDTO(r))
	}
	return out
}

func ToOuvidoriaStatusDTO(m model.OuvidoriaModel) OuvidoriaStatusDTO {
	return OuvidoriaStatusDTO{
		Protocolo:    m.OuvidoriaProtocolo,
		Status:       m.OuvidoriaStatus,
		Assunto:      m.OuvidoriaAssunto,
		Resposta:     m.OuvidoriaResposta,
		RespondidoEm: m.OuvidoriaRespondidoEm,
		CreatedAt:    m.OuvidoriaCreatedAt,
	}
}
