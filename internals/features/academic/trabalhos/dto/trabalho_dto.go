package dto

import (
	"strings"
	"time"

	"painel_backend/internals/features/academic/trabalhos/model"
	helper "painel_backend/internals/helpers"

	"github.com/google/uuid"
)

type TrabalhoDTO struct {
	ID         uuid.UUID  `json:"id"`
	Titulo     string     `json:"titulo"`
	Slug       string     `json:"slug"`
	Autor      *string    `json:"autor"`
	Resumo     *string    `json:"resumo"`
	Link       *string    `json:"link"`
	CursoID    *uuid.UUID `json:"curso_id"`
	Visitantes int64      `json:"visitantes"`
	Tags       []string   `json:"tags"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TrabalhoRequest: visitantes is a counter and never part of the payload.
type TrabalhoRequest struct {
	Titulo  string     `json:"titulo" validate:"required,min=3,max=200"`
	Slug    string     `json:"slug" validate:"omitempty,max=160"`
	Autor   *string    `json:"autor" validate:"omitempty,max=150"`
	Resumo  *string    `json:"resumo"`
	Link    *string    `json:"link" validate:"omitempty,url"`
	CursoID *uuid.UUID `json:"curso_id"`
	Tags    []string   `json:"tags" validate:"omitempty,max=20,dive,min=1,max=40"`
}

func (r *TrabalhoRequest) Normalize() {
	r.Titulo = strings.TrimSpace(r.Titulo)
	r.Slug = strings.TrimSpace(r.Slug)
	r.Autor = helper.TrimPtr(r.Autor)
	r.Resumo = helper.TrimPtr(r.Resumo)
	r.Link = helper.TrimPtr(r.Link)
	if r.CursoID != nil && *r.CursoID == uuid.Nil {
		r.CursoID = nil
	}
	r.Tags = normalizeTags(r.Tags)
}

// normalizeTags lowercases, trims and de-duplicates, keeping order.
func normalizeTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func (r TrabalhoRequest) Apply(m *model.TrabalhoModel) {
	m.TrabalhoTitulo = r.Titulo
	m.TrabalhoAutor = r.Autor
	m.TrabalhoResumo = r.Resumo
	m.TrabalhoLink = r.Link
	m.TrabalhoCursoID = r.CursoID
	m.TrabalhoTags = r.Tags
}

func ToTrabalhoDTO(m model.TrabalhoModel) TrabalhoDTO {
	tags := []string(m.TrabalhoTags)
	if tags == nil {
		tags = []string{}
	}
	return TrabalhoDTO{
		ID:         m.TrabalhoID,
		Titulo:     m.TrabalhoTitulo,
		Slug:       m.TrabalhoSlug,
		Autor:      m.TrabalhoAutor,
		Resumo:     m.TrabalhoResumo,
		Link:       m.TrabalhoLink,
		CursoID:    m.TrabalhoCursoID,
		Visitantes: m.TrabalhoVisitantes,
		Tags:       tags,
		CreatedAt:  m.TrabalhoCreatedAt,
		UpdatedAt:  m.TrabalhoUpdatedAt,
	}
}

func ToTrabalhoDTOs(rows []model.TrabalhoModel) []TrabalhoDTO {
	out := make([]TrabalhoDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToTrabalhoDTO(r))
	}
	return out
}
