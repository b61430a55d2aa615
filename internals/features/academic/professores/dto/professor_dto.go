package dto

import (
	"strings"
	"time"

	"painel_backend/internals/features/academic/professores/model"
	helper "painel_backend/internals/helpers"

	"github.com/google/uuid"
)

type ProfessorDTO struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	Titulacao *string   `json:"titulacao"`
	Email     *string   `json:"email"`
	Telefone  *string   `json:"telefone"`
	Link      *string   `json:"link"`
	FotoURL   *string   `json:"foto_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProfessorRequest struct {
	Nome      string  `json:"nome" validate:"required,min=3,max=150"`
	Titulacao *string `json:"titulacao" validate:"omitempty,oneof=Graduado Especialista Mestre Doutor"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Telefone  *string `json:"telefone" validate:"omitempty,max=30"`
	Link      *string `json:"link" validate:"omitempty,url"`
	FotoURL   *string `json:"foto_url" validate:"omitempty,max=2048"`
}

func (r *ProfessorRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Titulacao = helper.TrimPtr(r.Titulacao)
	if r.Email = helper.TrimPtr(r.Email); r.Email != nil {
		low := strings.ToLower(*r.Email)
		r.Email = &low
	}
	r.Telefone = helper.TrimPtr(r.Telefone)
	r.Link = helper.TrimPtr(r.Link)
	r.FotoURL = helper.TrimPtr(r.FotoURL)
}

func (r ProfessorRequest) Apply(m *model.ProfessorModel) {
	m.ProfessorNome = r.Nome
	m.ProfessorTitulacao = r.Titulacao
	m.ProfessorEmail = r.Email
	m.ProfessorTelefone = r.Telefone
	m.ProfessorLink = r.Link
	m.ProfessorFotoURL = r.FotoURL
}

func ToProfessorDTO(m model.ProfessorModel) ProfessorDTO {
	return ProfessorDTO{
		ID:        m.ProfessorID,
		Nome:      m.ProfessorNome,
		Titulacao: m.ProfessorTitulacao,
		Email:     m.ProfessorEmail,
		Telefone:  m.ProfessorTelefone,
		Link:      m.ProfessorLink,
		FotoURL:   m.ProfessorFotoURL,
		CreatedAt: m.ProfessorCreatedAt,
		UpdatedAt: m.ProfessorUpdatedAt,
	}
}

func ToProfessorDTOs(rows []model.ProfessorModel) []ProfessorDTO {
	out := make([]ProfessorDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToProfessorDTO(r))
	}
	return out
}
